package service

import (
	"fmt"
	"strings"
	"unicode"

	"avatar-trivia/internal/domain"
)

// stopwords es el set fijo de stopwords en inglés usado por el normalizador.
var stopwords = buildStopwordSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too",
	"very", "s", "t", "can", "will", "just", "don", "should", "now",
})

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// NormalizePosts limpia cada post para el extractor de embeddings: minúsculas,
// descarte de hashtags, menciones y URLs, tokenización y filtrado de tokens no
// alfabéticos y stopwords. Devuelve un string por post, en el mismo orden;
// los strings vacíos se filtran aguas abajo, no acá.
func NormalizePosts(posts []domain.Post) ([]string, error) {
	cleaned := make([]string, 0, len(posts))
	for i, post := range posts {
		if post.Text == "" {
			return nil, fmt.Errorf("post %d: %w", i, ErrInvalidPost)
		}
		cleaned = append(cleaned, cleanText(post.Text))
	}
	return cleaned, nil
}

func cleanText(text string) string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if strings.HasPrefix(word, "#") || strings.HasPrefix(word, "@") || strings.Contains(word, "http") {
			continue
		}
		token := strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
		if token == "" || !isAlpha(token) {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
