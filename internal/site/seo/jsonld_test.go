package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrganizationResolvesLogo(t *testing.T) {
	t.Parallel()

	got := Organization("Upstash", "https://upstash.com", "/static/img/logo.svg")
	require.Equal(t, "https://upstash.com/static/img/logo.svg", got["logo"])

	bare := Organization("Upstash", "", "")
	require.NotContains(t, bare, "url")
	require.NotContains(t, bare, "logo")
}

func TestItemListPositions(t *testing.T) {
	t.Parallel()

	got := ItemList("https://upstash.com/", []ListItem{
		{Name: "Redis", URL: "/docs/redis/overall/getstarted"},
		{Name: "Vector", URL: "https://example.com/vector"},
	})
	items := got["itemListElement"].([]map[string]any)
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0]["position"])
	require.Equal(t, "https://upstash.com/docs/redis/overall/getstarted", items[0]["url"])
	require.Equal(t, "https://example.com/vector", items[1]["url"])
}

func TestJSONCompact(t *testing.T) {
	t.Parallel()

	require.Equal(t, `{"@context":"https://schema.org","@type":"WebSite","name":"Docs"}`, JSON(WebSite("Docs", "", "")))
	require.Empty(t, JSON(func() {}))
}
