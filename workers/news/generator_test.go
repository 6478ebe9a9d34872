package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeSearch struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]ArticleResult
	errs    map[string]error
	block   chan struct{} // when set, Search waits until closed
}

func (f *fakeSearch) Search(ctx context.Context, topic string) ([]ArticleResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, topic)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if err, ok := f.errs[topic]; ok {
		return nil, err
	}
	return f.results[topic], nil
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSummarizer struct {
	mu    sync.Mutex
	calls []string
	errs  map[string]error
}

func (f *fakeSummarizer) SummarizeTopic(ctx context.Context, topic string, articles []ArticleResult) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, topic)
	f.mu.Unlock()

	if err, ok := f.errs[topic]; ok {
		return "", err
	}
	return fmt.Sprintf("résumé de %s (%d articles)", topic, len(articles)), nil
}

func (f *fakeSummarizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func articles(n int) []ArticleResult {
	out := make([]ArticleResult, n)
	for i := range out {
		out[i] = ArticleResult{
			Title:   fmt.Sprintf("Article %d", i+1),
			Link:    fmt.Sprintf("https://example.com/%d", i+1),
			Snippet: "snippet",
			Source:  "example.com",
		}
	}
	return out
}

func TestGenerate_NoInterests(t *testing.T) {
	search := &fakeSearch{}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{},
	})

	digest := g.Generate(context.Background())

	if digest.Status != StatusError {
		t.Errorf("expected status %q, got %q", StatusError, digest.Status)
	}
	if digest.Error != "no interests configured" {
		t.Errorf("unexpected error message: %q", digest.Error)
	}
	if search.callCount() != 0 {
		t.Errorf("expected no searches, got %d", search.callCount())
	}
	if g.IsGenerating() {
		t.Error("generator still marked as generating")
	}
}

func TestGenerate_ZeroResultsSkipsSummarizer(t *testing.T) {
	search := &fakeSearch{results: map[string][]ArticleResult{}}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{"espace"},
	})

	digest := g.Generate(context.Background())

	if digest.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, digest.Status)
	}
	if len(digest.Topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(digest.Topics))
	}

	td := digest.Topics[0]
	if td.Summary != NoArticlesMessage {
		t.Errorf("expected fallback message, got %q", td.Summary)
	}
	if td.ArticleCount != 0 {
		t.Errorf("expected 0 articles, got %d", td.ArticleCount)
	}
	if td.Articles == nil {
		t.Error("articles should be an empty slice, not nil")
	}
	if sum.callCount() != 0 {
		t.Errorf("summarizer should not be called for empty results, got %d calls", sum.callCount())
	}
}

func TestGenerate_SearchErrorTreatedAsZeroResults(t *testing.T) {
	search := &fakeSearch{errs: map[string]error{"espace": errors.New("quota exceeded")}}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{"espace"},
	})

	digest := g.Generate(context.Background())

	if digest.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, digest.Status)
	}
	if digest.Topics[0].Summary != NoArticlesMessage {
		t.Errorf("expected fallback message, got %q", digest.Topics[0].Summary)
	}
	if sum.callCount() != 0 {
		t.Error("summarizer should not be called after a search failure")
	}
}

func TestGenerate_PreservesTopicOrder(t *testing.T) {
	topics := []string{"espace", "jeux vidéo", "peinture", "cinéma"}
	results := make(map[string][]ArticleResult)
	for _, topic := range topics {
		results[topic] = articles(2)
	}

	search := &fakeSearch{results: results}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests(topics),
	})

	digest := g.Generate(context.Background())

	if len(digest.Topics) != len(topics) {
		t.Fatalf("expected %d topics, got %d", len(topics), len(digest.Topics))
	}
	for i, topic := range topics {
		if digest.Topics[i].Topic != topic {
			t.Errorf("topic %d: expected %q, got %q", i, topic, digest.Topics[i].Topic)
		}
	}
	for i, called := range search.calls {
		if called != topics[i] {
			t.Errorf("search call %d: expected %q, got %q", i, topics[i], called)
		}
	}
}

func TestGenerate_SummarizerFailureIsolatedPerTopic(t *testing.T) {
	search := &fakeSearch{results: map[string][]ArticleResult{
		"espace":   articles(3),
		"peinture": articles(2),
	}}
	sum := &fakeSummarizer{errs: map[string]error{"espace": errors.New("model overloaded")}}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{"espace", "peinture"},
	})

	digest := g.Generate(context.Background())

	if digest.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, digest.Status)
	}
	if digest.Topics[0].Summary != SummaryErrorMessage {
		t.Errorf("expected error message for failed topic, got %q", digest.Topics[0].Summary)
	}
	if digest.Topics[0].ArticleCount != 3 {
		t.Errorf("articles should survive a summary failure, got count %d", digest.Topics[0].ArticleCount)
	}
	if !strings.Contains(digest.Topics[1].Summary, "peinture") {
		t.Errorf("second topic should have a real summary, got %q", digest.Topics[1].Summary)
	}
}

func TestGenerate_ConcurrentCallDoesNotStartSecondPass(t *testing.T) {
	block := make(chan struct{})
	search := &fakeSearch{
		results: map[string][]ArticleResult{"espace": articles(1)},
		block:   block,
	}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{"espace"},
	})

	done := make(chan *NewsDigest, 1)
	go func() {
		done <- g.Generate(context.Background())
	}()

	// Wait until the first pass is inside the blocked search call
	deadline := time.After(time.Second)
	for search.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("first generation never reached the search client")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	placeholder := g.Generate(context.Background())
	if placeholder.Status != StatusGenerating {
		t.Errorf("expected placeholder status %q, got %q", StatusGenerating, placeholder.Status)
	}
	if len(placeholder.Topics) != 0 {
		t.Errorf("placeholder should have no topics, got %d", len(placeholder.Topics))
	}

	close(block)
	digest := <-done

	if digest.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, digest.Status)
	}
	if search.callCount() != 1 {
		t.Errorf("expected exactly one search, got %d", search.callCount())
	}
	if g.IsGenerating() {
		t.Error("generator still marked as generating after the pass")
	}

	// A concurrent call made after a cache exists returns the cache
	block2 := make(chan struct{})
	search.mu.Lock()
	search.block = block2
	search.mu.Unlock()

	go g.Generate(context.Background())
	deadline = time.After(time.Second)
	for search.callCount() < 2 {
		select {
		case <-deadline:
			t.Fatal("second generation never reached the search client")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	cached := g.Generate(context.Background())
	if cached != digest {
		t.Error("expected the previously cached digest while a pass is running")
	}
	close(block2)
}

func TestGenerate_RecoversFromPanic(t *testing.T) {
	search := &fakeSearch{results: map[string][]ArticleResult{"espace": articles(1)}}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: panickySummarizer{},
		Interests:  StaticInterests{"espace"},
	})

	digest := g.Generate(context.Background())

	if digest.Status != StatusError {
		t.Errorf("expected status %q, got %q", StatusError, digest.Status)
	}
	if digest.Error == "" {
		t.Error("expected an error message on the digest")
	}
	if g.IsGenerating() {
		t.Error("in-progress flag not cleared after panic")
	}

	// The generator must be usable again
	digest2 := g.Generate(context.Background())
	if digest2.Status != StatusError {
		t.Errorf("expected status %q on rerun, got %q", StatusError, digest2.Status)
	}
}

type panickySummarizer struct{}

func (panickySummarizer) SummarizeTopic(ctx context.Context, topic string, articles []ArticleResult) (string, error) {
	panic("boom")
}

func TestGenerate_CachedDigestUpdated(t *testing.T) {
	search := &fakeSearch{results: map[string][]ArticleResult{"espace": articles(1)}}
	sum := &fakeSummarizer{}
	g := NewGenerator(GeneratorOptions{
		Search:     search,
		Summarizer: sum,
		Interests:  StaticInterests{"espace"},
	})

	if g.CachedDigest() != nil {
		t.Error("expected no cached digest before the first pass")
	}

	digest := g.Generate(context.Background())
	if g.CachedDigest() != digest {
		t.Error("cached digest should be the result of the last pass")
	}
}
