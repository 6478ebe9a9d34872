package news

import (
	"fmt"
	"strings"
)

// summarySystemPrompt frames the model as a neutral news editor
const summarySystemPrompt = `Tu es un journaliste de veille. À partir d'une liste d'articles récents sur un sujet, tu rédiges une synthèse factuelle en français, sur un ton neutre, en 3 à 5 paragraphes. Ne commente pas les sources, n'invente rien, ne mets pas de titre.`

// BuildTopicPrompt assembles the user prompt for one topic from its articles
func BuildTopicPrompt(topic string, articles []ArticleResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sujet : %s\n\n", topic)
	b.WriteString("Articles des dernières 24 heures :\n")

	for i, a := range articles {
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, a.Title, a.Source)
		if a.Snippet != "" {
			fmt.Fprintf(&b, " — %s", a.Snippet)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRédige la synthèse de l'actualité de ce sujet.")

	return b.String()
}
