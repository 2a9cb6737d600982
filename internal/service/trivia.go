package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"avatar-trivia/internal/domain"
)

// QuizStrategy produce exactamente un QuizSet de 20 preguntas a partir de un
// Avatar. Las dos variantes (estática y generativa) comparten este contrato.
type QuizStrategy interface {
	Generate(ctx context.Context, avatar domain.Avatar) (domain.QuizSet, error)
}

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

// resolveText interpola los placeholders de una plantilla con datos del
// Avatar. Un placeholder sin dato disponible es fatal para esa instancia de
// plantilla y se reporta como ErrMissingAvatarField.
func resolveText(s string, avatar domain.Avatar) (string, error) {
	var resolveErr error
	out := placeholderRe.ReplaceAllStringFunc(s, func(ph string) string {
		switch ph {
		case "{username}":
			return avatar.Username
		case "{topic}":
			if len(avatar.Attributes.Interests) > 0 {
				return avatar.Attributes.Interests[0]
			}
		case "{secondary_topic}":
			if len(avatar.Attributes.Interests) > 1 {
				return avatar.Attributes.Interests[1]
			}
		}
		if resolveErr == nil {
			resolveErr = fmt.Errorf("placeholder %s: %w", ph, ErrMissingAvatarField)
		}
		return ph
	})
	return out, resolveErr
}

// resolveAnswer materializa la regla de respuesta de una plantilla contra el
// Avatar. Función pura: misma regla y mismo Avatar, mismo índice.
func resolveAnswer(rule domain.AnswerRule, avatar domain.Avatar) (int, error) {
	if rule.Derive == "" {
		if rule.Index < 0 || rule.Index > 3 {
			return 0, fmt.Errorf("answer index %d out of range", rule.Index)
		}
		return rule.Index, nil
	}

	// Las reglas derivadas sobre Big Five operan en escala 0-100.
	openness := avatar.Big5.Openness * 100

	switch rule.Derive {
	case domain.DeriveOpennessInnovation:
		if openness >= 70 {
			return 0, nil
		}
		return 1, nil
	case domain.DeriveOpennessCreative:
		if openness >= 70 {
			return 0, nil
		}
		return 2, nil
	case domain.DeriveNightOwl:
		// El Avatar no modela estilo de posteo; la plantilla no aplica.
		return 0, fmt.Errorf("rule %s: %w", rule.Derive, ErrMissingAvatarField)
	default:
		return 0, fmt.Errorf("unknown answer rule %q", rule.Derive)
	}
}

// buildQuizSet arma el QuizSet final: IDs secuenciales 1..n y conteo por
// categoría derivado de las preguntas emitidas.
func buildQuizSet(username string, questions []domain.Question) domain.QuizSet {
	counts := make(map[string]int, len(domain.Categories))
	for _, cat := range domain.Categories {
		counts[cat] = 0
	}
	for i := range questions {
		questions[i].QuestionID = i + 1
		counts[questions[i].Category]++
	}
	return domain.QuizSet{
		Username:   username,
		Questions:  questions,
		Categories: counts,
	}
}

func newQuestion(tpl domain.QuestionTemplate, text string, options []string, correct int) domain.Question {
	return domain.Question{
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
		Category:      tpl.Category,
		StakeAmount:   domain.QuestionStake,
		Reward:        domain.QuestionReward,
	}
}

func normalizeQuestionText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
