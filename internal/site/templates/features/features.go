// Package features renders the product cards grid.
package features

import (
	"html/template"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	sitefeatures "github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/helpers"
)

// Props configures the cards grid.
type Props struct {
	Features []sitefeatures.Feature
	// ViewID scopes hover requests; empty disables them.
	ViewID string
}

// List renders one card per feature in order.
func List(p Props) g.Node {
	return h.Section(h.Class("features"), h.ID("features"),
		h.Div(h.Class("container"),
			h.Div(h.Class("row"),
				g.Map(p.Features, func(f sitefeatures.Feature) g.Node {
					return card(f, p.ViewID)
				}),
			),
		),
	)
}

func card(f sitefeatures.Feature, viewID string) g.Node {
	interactive := viewID != ""
	return h.Div(h.Class("col col--4"),
		h.Div(h.Class("featureCard"), g.Attr("data-product", string(f.ProductID)),
			g.If(interactive, hoverAttrs(viewID, f.ProductID, "mouseenter")),
			h.Div(h.Class("text--center"),
				h.Img(h.Class("featureSvg"), h.Src(f.Icon), h.Alt(f.Title), g.Attr("role", "img")),
			),
			h.Div(h.Class("text--center padding-horiz--md"),
				h.H3(h.Class("featureTitle"), g.Attr("data-product", string(f.ProductID)), g.Text(f.Title)),
				h.Div(h.Class("featureDescription"), raw(sitefeatures.DescriptionHTML(f))),
			),
			h.Div(h.Class("buttonContainer"),
				h.A(h.Class("learnMoreButton"), h.Href(f.DocsLink), g.Text("Learn More")),
			),
			g.If(interactive, leave(viewID)),
		),
	)
}

// leave clears the hover when the pointer exits the enclosing card.
func leave(viewID string) g.Node {
	return h.Span(g.Attr("hidden"), g.Attr("data-hover-leave"),
		hoverAttrs(viewID, product.None, "mouseleave from:closest .featureCard"),
	)
}

func hoverAttrs(viewID string, id product.ID, trigger string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", helpers.HoverPath(viewID)),
		g.Attr("hx-vals", helpers.HXVals(map[string]string{"product": string(id)})),
		g.Attr("hx-trigger", trigger),
		g.Attr("hx-target", helpers.Target(helpers.HeroTitleID)),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-sync", "closest section:queue all"),
	})
}

func raw(html template.HTML) g.Node {
	return g.Raw(string(html))
}
