package helpers

import (
	"encoding/json"
	"net/url"
	"strings"
)

const (
	// HeroTitleID is the DOM id of the hero heading swapped on hover.
	HeroTitleID = "hero-title"
	// CSRFHeader carries the double-submit token on htmx requests.
	CSRFHeader = "X-CSRF-Token"
)

// ViewPath returns the page view resource path.
func ViewPath(viewID string) string {
	return "/views/" + url.PathEscape(strings.TrimSpace(viewID))
}

// HoverPath returns the endpoint that records pointer enter/leave for a view.
func HoverPath(viewID string) string {
	return ViewPath(viewID) + "/hover"
}

// TitlePath returns the hero title fragment endpoint for a view.
func TitlePath(viewID string) string {
	return ViewPath(viewID) + "/title"
}

// HXVals encodes values for an hx-vals attribute.
func HXVals(values map[string]string) string {
	return marshal(values)
}

// HXHeaders encodes headers for an hx-headers attribute.
func HXHeaders(headers map[string]string) string {
	return marshal(headers)
}

// Target returns a CSS id selector.
func Target(id string) string {
	return "#" + id
}

func marshal(v map[string]string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
