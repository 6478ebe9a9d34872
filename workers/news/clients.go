package news

import (
	"context"
	"fmt"

	"github.com/aguichard/persosite/vendors"
)

// VendorSearch adapts the Google Custom Search vendor client to SearchClient
type VendorSearch struct{}

func (VendorSearch) Search(ctx context.Context, topic string) ([]ArticleResult, error) {
	client := vendors.GetGoogleSearchClient()
	if client == nil {
		return nil, fmt.Errorf("search client not configured")
	}

	results, err := client.SearchRecent(ctx, topic)
	if err != nil {
		return nil, err
	}

	articles := make([]ArticleResult, 0, len(results))
	for _, r := range results {
		articles = append(articles, ArticleResult{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Source:  r.Source,
			Date:    r.Date,
		})
	}

	return articles, nil
}

// VendorSummarizer adapts the OpenAI vendor client to Summarizer
type VendorSummarizer struct{}

func (VendorSummarizer) SummarizeTopic(ctx context.Context, topic string, articles []ArticleResult) (string, error) {
	client := vendors.GetOpenAIClient()
	if client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	return client.Complete(ctx, vendors.CompletionOptions{
		SystemPrompt: summarySystemPrompt,
		Prompt:       BuildTopicPrompt(topic, articles),
		Temperature:  0.4,
	})
}
