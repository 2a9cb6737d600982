package service

import "errors"

var (
	// ErrInvalidPost marca un post sin texto; el pipeline lo reporta como
	// error de datos en vez de saltarlo en silencio.
	ErrInvalidPost = errors.New("post has no text")

	// ErrTemplatePoolExhausted: el pool estático no alcanza para un quiz completo.
	ErrTemplatePoolExhausted = errors.New("template pool cannot supply a full quiz")

	// ErrQuizIncomplete: la generación agotó su presupuesto de reintentos
	// antes de llegar al tamaño requerido.
	ErrQuizIncomplete = errors.New("quiz generation exhausted before reaching required size")

	// ErrMissingAvatarField: una plantilla requiere un dato que el Avatar no
	// tiene; esa instancia se descarta, no aborta la corrida.
	ErrMissingAvatarField = errors.New("avatar lacks a field required by the template")

	// ErrUpstream marca fallas de dependencias externas (encoder, modelo
	// generador); el handler las traduce a 502, el resto a 500.
	ErrUpstream = errors.New("upstream dependency failed")
)
