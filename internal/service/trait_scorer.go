package service

import (
	"math/rand"
	"time"

	"avatar-trivia/internal/domain"
)

// Baselines del heurístico por rasgo. El orden (O > C > E > A > N) se
// preserva en expectativa a través de muchas muestras.
const (
	baselineOpenness          = 0.8
	baselineConscientiousness = 0.7
	baselineExtraversion      = 0.6
	baselineAgreeableness     = 0.5
	baselineNeuroticism       = 0.3

	jitterRange = 0.1
)

// TraitScorer mapea un embedding a los cinco rasgos Big Five. La versión
// actual es un heurístico de ruido acotado (baseline ± jitter uniforme) que
// ignora el embedding; el contrato de salida ([0,1] por rasgo) no cambia
// cuando se enchufe un clasificador real.
type TraitScorer struct {
	rng *rand.Rand
}

// NewTraitScorer construye un scorer con la fuente de azar dada. Con rng nil
// se auto-siembra: llamadas sucesivas varían legítimamente. Los tests y todo
// caller que necesite reproducibilidad pasan un rand.New con semilla fija.
func NewTraitScorer(rng *rand.Rand) *TraitScorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TraitScorer{rng: rng}
}

// Score devuelve el perfil de rasgos para el embedding dado. Cada valor se
// recorta en 1.0; no hay recorte inferior (asimetría conocida del heurístico,
// inofensiva mientras baseline-jitter > 0).
func (s *TraitScorer) Score(embedding []float32) domain.Big5Traits {
	_ = embedding // el heurístico actual no lo usa
	return domain.Big5Traits{
		Openness:          s.sample(baselineOpenness),
		Conscientiousness: s.sample(baselineConscientiousness),
		Extraversion:      s.sample(baselineExtraversion),
		Agreeableness:     s.sample(baselineAgreeableness),
		Neuroticism:       s.sample(baselineNeuroticism),
	}
}

func (s *TraitScorer) sample(baseline float64) float64 {
	jitter := (s.rng.Float64() * 2 * jitterRange) - jitterRange
	score := baseline + jitter
	if score > 1.0 {
		score = 1.0
	}
	return score
}
