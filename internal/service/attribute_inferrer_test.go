package service

import (
	"reflect"
	"testing"

	"avatar-trivia/internal/domain"
)

func TestInferAttributesRegression(t *testing.T) {
	posts := []domain.Post{
		{Text: "So excited about AI these days 🔥"},
		{Text: "web3 is where I want to build"},
	}

	attrs := InferAttributes(posts)

	wantInterests := []string{"Artificial Intelligence", "Blockchain"}
	if !reflect.DeepEqual(attrs.Interests, wantInterests) {
		t.Fatalf("expected interests %v, got %v", wantInterests, attrs.Interests)
	}
	if attrs.CommunicationStyle != "Enthusiastic and technical" {
		t.Fatalf("expected enthusiastic style, got %q", attrs.CommunicationStyle)
	}
	if !reflect.DeepEqual(attrs.Goals, []string{"Build decentralized solutions"}) {
		t.Fatalf("expected web3 goal, got %v", attrs.Goals)
	}
	if !reflect.DeepEqual(attrs.Values, []string{"Innovation"}) {
		t.Fatalf("expected default values, got %v", attrs.Values)
	}
}

func TestInferAttributesDefaults(t *testing.T) {
	posts := []domain.Post{
		{Text: "nothing remarkable here"},
	}

	attrs := InferAttributes(posts)

	if len(attrs.Interests) != 0 {
		t.Fatalf("expected no interests, got %v", attrs.Interests)
	}
	if !reflect.DeepEqual(attrs.Goals, []string{"Advance technology"}) {
		t.Fatalf("expected default goal, got %v", attrs.Goals)
	}
	if attrs.CommunicationStyle != "Informative" {
		t.Fatalf("expected informative style, got %q", attrs.CommunicationStyle)
	}
}

func TestInferAttributesTransparencyValue(t *testing.T) {
	posts := []domain.Post{
		{Text: "I care about open-source and ethics in coding"},
	}

	attrs := InferAttributes(posts)

	if !reflect.DeepEqual(attrs.Values, []string{"Innovation", "Transparency"}) {
		t.Fatalf("expected transparency value, got %v", attrs.Values)
	}
	// "coding" dispara el interés Coding.
	found := false
	for _, interest := range attrs.Interests {
		if interest == "Coding" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Coding interest, got %v", attrs.Interests)
	}
}

func TestInferAttributesDeterministic(t *testing.T) {
	posts := []domain.Post{
		{Text: "Machine learning in San Francisco, excited!"},
	}

	first := InferAttributes(posts)
	second := InferAttributes(posts)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on identical input: %v vs %v", first, second)
	}
}
