package domain

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// Nombres fijos de los cinco rasgos Big Five.
const (
	TraitOpenness          = "Openness"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

// Big5Traits guarda cada rasgo en escala [0,1]. La escala 0-100 que usan
// algunas plantillas de trivia se obtiene multiplicando por 100; nunca se
// mezclan las dos representaciones sin conversión.
type Big5Traits struct {
	Openness          float64 `json:"Openness"`
	Conscientiousness float64 `json:"Conscientiousness"`
	Extraversion      float64 `json:"Extraversion"`
	Agreeableness     float64 `json:"Agreeableness"`
	Neuroticism       float64 `json:"Neuroticism"`
}

// AttributeSet son los atributos categóricos inferidos por reglas léxicas.
// El orden de interests sigue el orden fijo de chequeo de reglas.
type AttributeSet struct {
	Interests          []string `json:"interests"`
	Values             []string `json:"values"`
	Goals              []string `json:"goals"`
	CommunicationStyle string   `json:"communication_style"`
}

// Avatar es el perfil de personalidad derivado de los posts de un usuario.
// Inmutable una vez creado; la clave de persistencia es Username.
type Avatar struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	Big5        Big5Traits      `json:"big5_traits"`
	Attributes  AttributeSet    `json:"attributes"`
	Description string          `json:"description"`
	Embedding   pgvector.Vector `json:"-"`
	IPFSHash    string          `json:"ipfs_hash,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
