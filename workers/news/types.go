package news

import "context"

// Digest status values
const (
	StatusReady      = "ready"
	StatusGenerating = "generating"
	StatusError      = "error"
	StatusEmpty      = "empty"
)

// ArticleResult is one search hit for a topic. Ephemeral, never persisted.
type ArticleResult struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Snippet string  `json:"snippet"`
	Source  string  `json:"source"`
	Date    *string `json:"date,omitempty"`
}

// TopicDigest is the summarized result for a single configured interest
type TopicDigest struct {
	Topic        string          `json:"topic"`
	Summary      string          `json:"summary"`
	Articles     []ArticleResult `json:"articles"`
	ArticleCount int             `json:"articleCount"`
}

// NewsDigest is the unit of caching: one full generation pass over all interests
type NewsDigest struct {
	GeneratedAt int64         `json:"generatedAt"`
	Topics      []TopicDigest `json:"topics"`
	Status      string        `json:"status"`
	Error       string        `json:"error,omitempty"`
}

// SearchClient finds recent articles for a topic
type SearchClient interface {
	Search(ctx context.Context, topic string) ([]ArticleResult, error)
}

// Summarizer produces a synthesis of the articles found for a topic
type Summarizer interface {
	SummarizeTopic(ctx context.Context, topic string, articles []ArticleResult) (string, error)
}

// InterestSource provides the ordered list of topics to digest
type InterestSource interface {
	Interests() []string
}

// EmptyDigest is the placeholder served before any generation has run
func EmptyDigest() *NewsDigest {
	return &NewsDigest{
		Topics: []TopicDigest{},
		Status: StatusEmpty,
	}
}

// GeneratingDigest is the placeholder served while the first generation
// pass is still running
func GeneratingDigest() *NewsDigest {
	return &NewsDigest{
		Topics: []TopicDigest{},
		Status: StatusGenerating,
	}
}

// Fixed per-topic fallback messages. Summaries are written in French, so the
// degraded-output sentences are too.
const (
	NoArticlesMessage   = "Aucun article trouvé dans les dernières 24 heures pour ce sujet."
	SummaryErrorMessage = "Le résumé n'a pas pu être généré pour ce sujet."
)
