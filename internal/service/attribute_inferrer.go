package service

import (
	"strings"

	"avatar-trivia/internal/domain"
)

// interestRules define los intereses candidatos y sus substrings gatillo.
// El orden de la lista es el orden de salida; cada regla es independiente.
var interestRules = []struct {
	interest string
	triggers []string
}{
	{"Artificial Intelligence", []string{"ai", "machine learning", "distilbert"}},
	{"Blockchain", []string{"blockchain", "base", "web3"}},
	{"Coding", []string{"coding", "developer"}},
	{"Tech Events", []string{"san francisco", "sf"}},
}

// InferAttributes aplica el motor de reglas léxicas sobre la concatenación de
// los textos crudos en minúsculas (hashtags y menciones incluidos). Matching
// por contención de substring, sin red ni aleatoriedad: entrada idéntica
// produce salida idéntica.
func InferAttributes(posts []domain.Post) domain.AttributeSet {
	parts := make([]string, 0, len(posts))
	for _, post := range posts {
		parts = append(parts, strings.ToLower(post.Text))
	}
	text := strings.Join(parts, " ")

	interests := []string{}
	for _, rule := range interestRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(text, trigger) {
				interests = append(interests, rule.interest)
				break
			}
		}
	}

	values := []string{"Innovation"}
	if strings.Contains(text, "open-source") || strings.Contains(text, "ethics") {
		values = []string{"Innovation", "Transparency"}
	}

	goals := []string{"Advance technology"}
	if strings.Contains(text, "web3") {
		goals = []string{"Build decentralized solutions"}
	}

	style := "Informative"
	if strings.Contains(text, "excited") || strings.Contains(text, "🔥") {
		style = "Enthusiastic and technical"
	}

	return domain.AttributeSet{
		Interests:          interests,
		Values:             values,
		Goals:              goals,
		CommunicationStyle: style,
	}
}
