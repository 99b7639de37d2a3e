package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

func TestListOrderAndLinks(t *testing.T) {
	t.Parallel()

	items := List()
	require.Len(t, items, 3)

	want := []struct {
		title string
		id    product.ID
		docs  string
		icon  string
	}{
		{"Redis", product.Redis, "/docs/redis/overall/getstarted", "/static/img/redis-logo.svg"},
		{"Vector", product.Vector, "/docs/vector/overall/getstarted", "/static/img/vector-logo.svg"},
		{"QStash", product.QStash, "/docs/qstash/overall/getstarted", "/static/img/qstash-logo.svg"},
	}
	for i, w := range want {
		require.Equal(t, w.title, items[i].Title)
		require.Equal(t, w.id, items[i].ProductID)
		require.Equal(t, w.docs, items[i].DocsLink)
		require.Equal(t, w.icon, items[i].Icon)
		require.True(t, product.Known(items[i].ProductID), "every card needs a hero variant")
	}
}

func TestListReturnsCopy(t *testing.T) {
	t.Parallel()

	items := List()
	items[0].Title = "changed"
	require.Equal(t, "Redis", List()[0].Title)
}

func TestDescriptionHTMLKeepsCopy(t *testing.T) {
	t.Parallel()

	html := string(DescriptionHTML(List()[0]))
	require.True(t, strings.HasPrefix(html, "<p>"), html)
	require.Contains(t, html, "Serverless Redis® with global replication")
}

func TestRenderDescriptionSanitises(t *testing.T) {
	t.Parallel()

	html := string(RenderDescription("Fast **cache** <script>alert(1)</script>"))
	require.Contains(t, html, "<strong>cache</strong>")
	require.NotContains(t, html, "<script>")
	require.Empty(t, RenderDescription("   "))
}
