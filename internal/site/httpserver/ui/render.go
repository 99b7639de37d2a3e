package ui

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// component adapts a gomponents node to templ so pages and fragments share
// templ's response handling.
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

func render(w http.ResponseWriter, r *http.Request, node g.Node) {
	templ.Handler(component(node)).ServeHTTP(w, r)
}
