// Package home renders the landing page.
package home

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	sitefeatures "github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/seo"
	featurestpl "github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/layout"
)

// Props carries everything the landing page needs.
type Props struct {
	Site     config.Site
	Features []sitefeatures.Feature
	Variant  product.Variant

	// Interactive pages carry htmx wiring scoped to ViewID.
	Interactive bool
	ViewID      string
	CSRFToken   string
	HTMXSrc     string
}

// Page renders the full landing document.
func Page(p Props) g.Node {
	viewID := ""
	if p.Interactive {
		viewID = p.ViewID
	}
	return layout.Page(layout.Props{
		Title:       p.Site.Title,
		Description: p.Site.Description,
		Favicon:     p.Site.Logo,
		URL:         p.Site.URL,
		Image:       seo.Absolute(p.Site.URL, p.Site.Logo),
		JSONLD:      structuredData(p),
		Copyright:   p.Site.Footer.Copyright,
		Interactive: p.Interactive,
		HTMXSrc:     p.HTMXSrc,
		CSRFToken:   p.CSRFToken,
		ViewID:      viewID,
	},
		Header(p.Site, p.Variant),
		h.Main(
			featurestpl.List(featurestpl.Props{Features: p.Features, ViewID: viewID}),
		),
	)
}

func structuredData(p Props) []string {
	items := make([]seo.ListItem, 0, len(p.Features))
	for _, f := range p.Features {
		items = append(items, seo.ListItem{Name: f.Title, URL: f.DocsLink})
	}
	out := make([]string, 0, 3)
	for _, v := range []any{
		seo.WebSite(p.Site.Title, p.Site.URL, p.Site.Description),
		seo.Organization(p.Site.Organization, p.Site.URL, p.Site.Logo),
		seo.ItemList(p.Site.URL, items),
	} {
		if s := seo.JSON(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
