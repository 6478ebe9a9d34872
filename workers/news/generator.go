package news

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
)

// Generator produces and caches news digests. All state lives on the
// instance so tests can run isolated generators; the mutex guards the
// cached digest and the in-progress flag.
type Generator struct {
	search     SearchClient
	summarizer Summarizer
	interests  InterestSource
	topicDelay time.Duration

	mu         sync.Mutex
	cached     *NewsDigest
	generating bool
}

// GeneratorOptions configures a Generator
type GeneratorOptions struct {
	Search     SearchClient
	Summarizer Summarizer
	Interests  InterestSource
	TopicDelay time.Duration // pause between topics, rate-limit courtesy
}

// NewGenerator creates a digest generator
func NewGenerator(opts GeneratorOptions) *Generator {
	return &Generator{
		search:     opts.Search,
		summarizer: opts.Summarizer,
		interests:  opts.Interests,
		topicDelay: opts.TopicDelay,
	}
}

// Generate runs one full generation pass: every configured interest is
// searched and summarized sequentially, in order. At most one pass runs at
// a time; a call made while a pass is running does not start a second one
// and returns the current cached digest, or a "generating" placeholder if
// nothing has been cached yet.
func (g *Generator) Generate(ctx context.Context) *NewsDigest {
	g.mu.Lock()
	if g.generating {
		cached := g.cached
		g.mu.Unlock()
		if cached != nil {
			return cached
		}
		return &NewsDigest{
			GeneratedAt: db.NowMs(),
			Topics:      []TopicDigest{},
			Status:      StatusGenerating,
		}
	}
	g.generating = true
	g.mu.Unlock()

	digest := g.run(ctx)

	// Replace the cache atomically and clear the flag, success or not
	g.mu.Lock()
	g.cached = digest
	g.generating = false
	g.mu.Unlock()

	return digest
}

// run executes the pass itself. A panic anywhere in the pipeline is
// captured into an error-status digest so the in-progress flag still gets
// cleared by Generate.
func (g *Generator) run(ctx context.Context) (digest *NewsDigest) {
	digest = &NewsDigest{
		GeneratedAt: db.NowMs(),
		Topics:      []TopicDigest{},
		Status:      StatusReady,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("digest generation panicked")
			digest.Status = StatusError
			digest.Error = fmt.Sprintf("digest generation failed: %v", r)
		}
	}()

	interests := g.interests.Interests()
	if len(interests) == 0 {
		digest.Status = StatusError
		digest.Error = "no interests configured"
		return digest
	}

	log.Info().Int("topics", len(interests)).Msg("generating news digest")
	start := time.Now()

	for i, topic := range interests {
		digest.Topics = append(digest.Topics, g.digestTopic(ctx, topic))

		if i < len(interests)-1 && g.topicDelay > 0 {
			time.Sleep(g.topicDelay)
		}
	}

	log.Info().
		Int("topics", len(digest.Topics)).
		Dur("elapsed", time.Since(start)).
		Msg("news digest generated")

	return digest
}

// digestTopic searches and summarizes a single topic. Search and model
// failures degrade to fixed sentences for this topic only.
func (g *Generator) digestTopic(ctx context.Context, topic string) TopicDigest {
	articles, err := g.search.Search(ctx, topic)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("search failed, treating as zero results")
		articles = nil
	}

	td := TopicDigest{
		Topic:        topic,
		Articles:     articles,
		ArticleCount: len(articles),
	}
	if td.Articles == nil {
		td.Articles = []ArticleResult{}
	}

	if len(articles) == 0 {
		td.Summary = NoArticlesMessage
		return td
	}

	summary, err := g.summarizer.SummarizeTopic(ctx, topic, articles)
	if err != nil || summary == "" {
		log.Warn().Err(err).Str("topic", topic).Msg("summarization failed")
		td.Summary = SummaryErrorMessage
		return td
	}

	td.Summary = summary
	return td
}

// CachedDigest returns the last cached digest, or nil
func (g *Generator) CachedDigest() *NewsDigest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cached
}

// IsGenerating reports whether a generation pass is currently running
func (g *Generator) IsGenerating() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generating
}
