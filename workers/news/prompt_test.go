package news

import (
	"strings"
	"testing"
)

func TestBuildTopicPrompt(t *testing.T) {
	prompt := BuildTopicPrompt("espace", []ArticleResult{
		{Title: "Lancement réussi", Source: "lemonde.fr", Snippet: "La fusée a décollé ce matin."},
		{Title: "Nouvelle sonde", Source: "futura-sciences.com"},
	})

	if !strings.Contains(prompt, "Sujet : espace") {
		t.Error("prompt should name the topic")
	}
	if !strings.Contains(prompt, "1. Lancement réussi (lemonde.fr)") {
		t.Error("articles should be numbered with their source")
	}
	if !strings.Contains(prompt, "La fusée a décollé ce matin.") {
		t.Error("snippets should be included when present")
	}
	if !strings.Contains(prompt, "2. Nouvelle sonde (futura-sciences.com)\n") {
		t.Error("articles without a snippet should still be listed")
	}
}
