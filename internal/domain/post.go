package domain

import "time"

// Post es una publicación cruda tal como la entrega la fuente (payload o API de X).
// El pipeline solo la lee; nunca la modifica.
type Post struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
