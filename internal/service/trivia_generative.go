package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/llm"
)

const (
	defaultReuseCap    = 2
	defaultMaxAttempts = 3 * domain.QuizSize
)

// GenerativeQuizStrategy redacta cada pregunta con un modelo de texto a
// partir de una plantilla: el prompt lleva la opción correcta resaltada, pero
// opciones e índice correcto salen siempre de la plantilla, nunca del modelo.
//
// Ciclo por pregunta: seleccionar plantilla → generar texto → chequear
// duplicados → aceptar o reintentar. Un tope de reuso por plantilla
// (default 2) reparte la selección; si el pool con tope se agota antes de
// las 20, una pasada de respaldo ignora el tope. El total de intentos está
// acotado, así que la terminación está garantizada.
type GenerativeQuizStrategy struct {
	llmClient   llm.LLMClient
	pool        []domain.QuestionTemplate
	rng         *rand.Rand
	logger      *zap.Logger
	reuseCap    int
	maxAttempts int
	timeout     time.Duration
}

// NewGenerativeQuizStrategy arma la estrategia con el pool autorado. Las
// plantillas sin respuesta correcta declarada quedan fuera del pool desde el
// arranque.
func NewGenerativeQuizStrategy(llmClient llm.LLMClient, rng *rand.Rand, timeout time.Duration, logger *zap.Logger) *GenerativeQuizStrategy {
	return NewGenerativeQuizStrategyWithPool(generativeTemplates, llmClient, rng, timeout, logger)
}

// NewGenerativeQuizStrategyWithPool permite inyectar un pool propio (tests).
func NewGenerativeQuizStrategyWithPool(raw []domain.QuestionTemplate, llmClient llm.LLMClient, rng *rand.Rand, timeout time.Duration, logger *zap.Logger) *GenerativeQuizStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pool := make([]domain.QuestionTemplate, 0, len(raw))
	excluded := 0
	for _, tpl := range raw {
		if tpl.Answer.Derive == "" && (tpl.Answer.Index < 0 || tpl.Answer.Index > 3) {
			excluded++
			continue
		}
		pool = append(pool, tpl)
	}
	if excluded > 0 {
		logger.Info("templates without declared answer excluded from pool", zap.Int("count", excluded))
	}

	return &GenerativeQuizStrategy{
		llmClient:   llmClient,
		pool:        pool,
		rng:         rng,
		logger:      logger,
		reuseCap:    defaultReuseCap,
		maxAttempts: defaultMaxAttempts,
		timeout:     timeout,
	}
}

// Generate produce el QuizSet de 20 preguntas de texto único. Quedarse corto
// dentro del presupuesto de intentos es una falla dura (ErrQuizIncomplete):
// nunca se devuelve un quiz parcial.
func (g *GenerativeQuizStrategy) Generate(ctx context.Context, avatar domain.Avatar) (domain.QuizSet, error) {
	usable := make([]int, len(g.pool))
	for i := range g.pool {
		usable[i] = i
	}

	usage := make(map[int]int, len(g.pool))
	seen := make(map[string]struct{}, domain.QuizSize)
	questions := make([]domain.Question, 0, domain.QuizSize)
	relaxed := false

	for attempts := 0; len(questions) < domain.QuizSize && attempts < g.maxAttempts; attempts++ {
		var candidates []int
		if relaxed {
			candidates = usable
		} else {
			for _, idx := range usable {
				if usage[idx] < g.reuseCap {
					candidates = append(candidates, idx)
				}
			}
		}
		if len(candidates) == 0 {
			if !relaxed {
				// Pasada de respaldo: se permite cualquier plantilla del pool.
				relaxed = true
				g.logger.Info("reuse cap exhausted, relaxing", zap.Int("questions", len(questions)))
				continue
			}
			break
		}

		idx := candidates[g.rng.Intn(len(candidates))]
		tpl := g.pool[idx]

		q, err := materializeStatic(tpl, avatar)
		if err != nil {
			if errors.Is(err, ErrMissingAvatarField) {
				// La plantilla pide datos que este Avatar no tiene; fuera
				// del pool para el resto de la corrida.
				g.logger.Warn("template skipped", zap.String("template", tpl.Text), zap.Error(err))
				usable = removeIndex(usable, idx)
				continue
			}
			return domain.QuizSet{}, err
		}

		text, err := g.generateText(ctx, avatar.Username, q)
		if err != nil {
			return domain.QuizSet{}, fmt.Errorf("generate question text: %w: %w", ErrUpstream, err)
		}

		key := normalizeQuestionText(text)
		if text == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}

		// El tope de reuso cuenta preguntas aceptadas; intentos vacíos o
		// duplicados no gastan el cupo de la plantilla.
		usage[idx]++
		seen[key] = struct{}{}
		q.Text = text
		questions = append(questions, q)
	}

	if len(questions) < domain.QuizSize {
		return domain.QuizSet{}, fmt.Errorf("have %d of %d questions: %w", len(questions), domain.QuizSize, ErrQuizIncomplete)
	}

	return buildQuizSet(avatar.Username, questions), nil
}

func (g *GenerativeQuizStrategy) generateText(ctx context.Context, username string, q domain.Question) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildQuestionPrompt(username, q)
	raw, err := g.llmClient.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return cleanLLMResponse(raw), nil
}

// buildQuestionPrompt arma el prompt de redacción: la opción correcta va
// resaltada en el texto para condicionar la pregunta sin regalarla.
func buildQuestionPrompt(username string, q domain.Question) string {
	var b strings.Builder
	b.WriteString("Rewrite this multiple-choice trivia question about the online personality of ")
	b.WriteString(username)
	b.WriteString(" with a fresh, playful phrasing. Keep it a single question and do not mention the answer.\n\n")
	b.WriteString("Question: ")
	b.WriteString(q.Text)
	b.WriteString("\nOptions: ")
	b.WriteString(strings.Join(q.Options, ", "))
	b.WriteString("\nThe correct answer is **")
	b.WriteString(q.Options[q.CorrectAnswer])
	b.WriteString("**.\n\nReturn only the rewritten question text.")
	return b.String()
}

func removeIndex(indices []int, target int) []int {
	out := indices[:0]
	for _, idx := range indices {
		if idx != target {
			out = append(out, idx)
		}
	}
	return out
}
