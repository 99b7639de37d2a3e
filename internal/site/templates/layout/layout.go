// Package layout renders the HTML document shell shared by every page.
package layout

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/helpers"
)

const stylesheet = "/static/css/site.css"

// Props configures the document head and the htmx bootstrap.
type Props struct {
	Title       string
	Description string
	Favicon     string
	// URL is the canonical site origin; Image an absolute preview image.
	URL   string
	Image string
	// JSONLD holds pre-encoded schema.org payloads.
	JSONLD    []string
	Copyright string

	// Interactive enables htmx. Exported pages leave it off.
	Interactive bool
	HTMXSrc     string
	CSRFToken   string
	ViewID      string
}

// Page wraps body in the document shell.
func Page(p Props, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(h.Lang("en"),
			head(p),
			h.Body(
				g.If(p.Interactive && p.CSRFToken != "",
					g.Attr("hx-headers", helpers.HXHeaders(map[string]string{helpers.CSRFHeader: p.CSRFToken})),
				),
				g.If(p.Interactive && p.ViewID != "", g.Attr("data-view-id", p.ViewID)),
				g.Group(body),
				footer(p.Copyright),
				g.If(p.Interactive && p.ViewID != "", g.Group([]g.Node{unmount(p.ViewID), restore(p.ViewID)})),
			),
		),
	})
}

func head(p Props) g.Node {
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(p.Title)),
		g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
		g.If(p.Interactive && p.CSRFToken != "", h.Meta(h.Name("csrf-token"), h.Content(p.CSRFToken))),
		g.If(p.Favicon != "", h.Link(h.Rel("icon"), h.Href(p.Favicon))),
		g.If(p.URL != "", h.Link(h.Rel("canonical"), h.Href(p.URL+"/"))),
		openGraph(p),
		h.Link(h.Rel("stylesheet"), h.Href(stylesheet)),
		g.Map(p.JSONLD, func(payload string) g.Node {
			return h.Script(h.Type("application/ld+json"), g.Raw(payload))
		}),
		g.If(p.Interactive && p.HTMXSrc != "", h.Script(h.Src(p.HTMXSrc), g.Attr("defer"))),
	)
}

func openGraph(p Props) g.Node {
	url := ""
	if p.URL != "" {
		url = p.URL + "/"
	}
	nodes := []g.Node{}
	for _, prop := range [][2]string{
		{"og:type", "website"},
		{"og:title", p.Title},
		{"og:description", p.Description},
		{"og:url", url},
		{"og:image", p.Image},
	} {
		if prop[1] != "" {
			nodes = append(nodes, h.Meta(g.Attr("property", prop[0]), h.Content(prop[1])))
		}
	}
	nodes = append(nodes, h.Meta(h.Name("twitter:card"), h.Content("summary")))
	return g.Group(nodes)
}

func footer(copyright string) g.Node {
	if copyright == "" {
		return nil
	}
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container text--center"), g.Text(copyright)),
	)
}

// unmount drops the server-side view when the page goes away.
func unmount(viewID string) g.Node {
	return h.Div(
		g.Attr("hidden"),
		g.Attr("data-view-unmount"),
		g.Attr("hx-delete", helpers.ViewPath(viewID)),
		g.Attr("hx-trigger", "pagehide from:window"),
		g.Attr("hx-swap", "none"),
	)
}

// restore re-fetches the hero title when the page comes back from the
// back/forward cache. A view unmounted on pagehide answers with HX-Refresh.
func restore(viewID string) g.Node {
	return h.Div(
		g.Attr("hidden"),
		g.Attr("data-view-restore"),
		g.Attr("hx-get", helpers.TitlePath(viewID)),
		g.Attr("hx-trigger", "pageshow[persisted] from:window, htmx:historyRestore from:body"),
		g.Attr("hx-target", helpers.Target(helpers.HeroTitleID)),
		g.Attr("hx-swap", "outerHTML"),
	)
}
