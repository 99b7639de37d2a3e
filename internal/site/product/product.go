// Package product defines the product identifiers shown on the landing page and
// the hero title style variant each one selects.
package product

// ID identifies a product card. Any string is a valid ID; only the constants
// below select a non-default style variant.
type ID string

const (
	Redis  ID = "redis"
	Vector ID = "vector"
	QStash ID = "qstash"
)

// None is the empty identifier, meaning no product is hovered.
const None ID = ""

// TitleClass is always applied to the hero title.
const TitleClass = "heroTitle"

// Variant is the hero title style selected by the hovered product.
type Variant int

const (
	VariantDefault Variant = iota
	VariantRedis
	VariantVector
	VariantQStash
)

// Variants lists every non-default variant in display order.
var Variants = []Variant{VariantRedis, VariantVector, VariantQStash}

// VariantOf maps a hovered identifier to its style variant. Matching is exact:
// no case folding, no prefixes. Unknown identifiers and None yield VariantDefault.
func VariantOf(id ID) Variant {
	switch id {
	case Redis:
		return VariantRedis
	case Vector:
		return VariantVector
	case QStash:
		return VariantQStash
	default:
		return VariantDefault
	}
}

// Known reports whether id selects a non-default variant.
func Known(id ID) bool {
	return VariantOf(id) != VariantDefault
}

// String returns the variant name used in data attributes and logs.
func (v Variant) String() string {
	switch v {
	case VariantRedis:
		return string(Redis)
	case VariantVector:
		return string(Vector)
	case VariantQStash:
		return string(QStash)
	default:
		return "default"
	}
}

// Class returns the modifier class added next to TitleClass, or "" for the
// default variant.
func (v Variant) Class() string {
	if v == VariantDefault {
		return ""
	}
	return TitleClass + "--" + v.String()
}
