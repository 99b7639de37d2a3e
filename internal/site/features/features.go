// Package features holds the product feature cards shown below the hero banner.
package features

import (
	"html/template"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

// Feature describes one product card. Values are fixed at build time.
type Feature struct {
	Title       string
	Icon        string // path under /static
	Description string // markdown
	DocsLink    string
	ProductID   product.ID
}

var list = []Feature{
	{
		Title:       "Redis",
		Icon:        "/static/img/redis-logo.svg",
		Description: "Serverless Redis® with global replication, durable storage, and automatic scaling. Perfect for real-time applications, caching, and session management.",
		DocsLink:    "/docs/redis/overall/getstarted",
		ProductID:   product.Redis,
	},
	{
		Title:       "Vector",
		Icon:        "/static/img/vector-logo.svg",
		Description: "Serverless vector database designed for AI applications. Store and search embeddings with high performance and cost efficiency.",
		DocsLink:    "/docs/vector/overall/getstarted",
		ProductID:   product.Vector,
	},
	{
		Title:       "QStash",
		Icon:        "/static/img/qstash-logo.svg",
		Description: "HTTP-based messaging and scheduling solution for the serverless era. Perfect for background jobs, webhooks, and scheduling tasks.",
		DocsLink:    "/docs/qstash/overall/getstarted",
		ProductID:   product.QStash,
	},
}

var rendered = renderAll(list)

// List returns the feature cards in display order. The slice is a copy.
func List() []Feature {
	out := make([]Feature, len(list))
	copy(out, list)
	return out
}

// DescriptionHTML returns the sanitised HTML for f's description.
func DescriptionHTML(f Feature) template.HTML {
	if html, ok := rendered[f.Description]; ok {
		return html
	}
	return RenderDescription(f.Description)
}

func renderAll(items []Feature) map[string]template.HTML {
	out := make(map[string]template.HTML, len(items))
	for _, f := range items {
		out[f.Description] = RenderDescription(f.Description)
	}
	return out
}
