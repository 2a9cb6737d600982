package domain

// Categorías fijas de trivia.
const (
	CategoryMindset      = "Mindset"
	CategoryCareer       = "Career"
	CategoryLifeGoals    = "Life Goals"
	CategoryVibe         = "Vibe"
	CategoryOnlineHabits = "Online Habits"
)

// Categories lista las cinco categorías en orden canónico.
var Categories = []string{
	CategoryMindset,
	CategoryCareer,
	CategoryLifeGoals,
	CategoryVibe,
	CategoryOnlineHabits,
}

// QuizSize es el tamaño fijo de todo QuizSet generado.
const QuizSize = 20

// Montos inertes de stake/reward que acompañan cada pregunta.
const (
	QuestionStake  = 0.01
	QuestionReward = 0.02
)

// Reglas de derivación de respuesta con nombre. Se resuelven contra el Avatar
// con una función pura al materializar la pregunta; nunca se guarda código
// ejecutable en las plantillas.
const (
	// DeriveOpennessInnovation: opción 0 si Openness (escala 0-100) >= 70, sino 1.
	DeriveOpennessInnovation = "openness_innovation"
	// DeriveOpennessCreative: opción 0 si Openness (escala 0-100) >= 70, sino 2.
	DeriveOpennessCreative = "openness_creative"
	// DeriveNightOwl: depende del estilo de posteo, campo que el Avatar no tiene.
	// Toda plantilla con esta regla se descarta en tiempo de selección.
	DeriveNightOwl = "night_owl_posting"
)

// AnswerRule es la variante etiquetada para la respuesta correcta de una
// plantilla: índice estático cuando Derive == "", regla con nombre si no.
type AnswerRule struct {
	Index  int
	Derive string
}

// StaticAnswer construye una regla con índice fijo.
func StaticAnswer(index int) AnswerRule {
	return AnswerRule{Index: index}
}

// DerivedAnswer construye una regla que se resuelve contra el Avatar.
func DerivedAnswer(name string) AnswerRule {
	return AnswerRule{Derive: name}
}

// QuestionTemplate es el esqueleto pre-autorado de una pregunta. Text y
// Options pueden contener placeholders tipo {username} o {topic} que se
// interpolan desde el Avatar.
type QuestionTemplate struct {
	Category string
	Text     string
	Options  []string
	Answer   AnswerRule
}

// Question es una pregunta materializada. Invariante: 0 <= CorrectAnswer < 4.
type Question struct {
	QuestionID    int      `json:"questionId"`
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Category      string   `json:"category"`
	StakeAmount   float64  `json:"stake_amount"`
	Reward        float64  `json:"reward"`
}

// QuizSet es el cuestionario completo de un usuario. Invariante:
// len(Questions) == QuizSize y la suma de Categories coincide.
type QuizSet struct {
	Username   string         `json:"username"`
	Questions  []Question     `json:"questions"`
	Categories map[string]int `json:"categories"`
	IPFSHash   string         `json:"ipfs_hash,omitempty"`
}
