package home

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/helpers"
)

// HeroTitle renders the banner heading. The base class is always present and
// at most one variant modifier is added.
func HeroTitle(title string, variant product.Variant) g.Node {
	classes := c.Classes{product.TitleClass: true}
	for _, v := range product.Variants {
		classes[v.Class()] = v == variant
	}
	return h.H1(h.ID(helpers.HeroTitleID), classes,
		g.Attr("data-variant", variant.String()),
		g.Attr("aria-live", "polite"),
		g.Text(title),
	)
}

// Header renders the hero banner with tagline and call to action.
func Header(site config.Site, variant product.Variant) g.Node {
	cta := site.Hero.CTA
	return h.Header(h.Class("hero heroBanner"),
		h.Div(h.Class("container"),
			HeroTitle(site.Title, variant),
			h.P(h.Class("heroSubtitle"), g.Text(site.Tagline)),
			g.If(cta.Href != "",
				h.Div(h.Class("buttons"),
					h.A(h.Class("button"), h.Href(cta.Href), g.Text(cta.Label)),
				),
			),
		),
	)
}
