package domain

import (
	"errors"
	"strings"
)

// Category enumerates the product families sold in the storefront.
type Category string

const (
	CategoryShawl   Category = "Shawl"
	CategoryStole   Category = "Stole"
	CategoryScarf   Category = "Scarf"
	CategoryPoncho  Category = "Poncho"
	CategoryPrinted Category = "Printed"
)

// Size enumerates the garment sizes offered across the catalog.
type Size string

const (
	SizeOneSize Size = "OS"
	SizeSmall   Size = "S"
	SizeMedium  Size = "M"
	SizeLarge   Size = "L"
)

var (
	ErrEmptyProductID  = errors.New("product id is required")
	ErrEmptyName       = errors.New("product name is required")
	ErrInvalidCategory = errors.New("product category is invalid")
	ErrNegativePrice   = errors.New("product price must not be negative")
	ErrNoColors        = errors.New("product must offer at least one color")
	ErrNoSizes         = errors.New("product must offer at least one size")
	ErrInvalidSize     = errors.New("product size is invalid")
)

var categories = []Category{CategoryShawl, CategoryStole, CategoryScarf, CategoryPoncho, CategoryPrinted}

var sizes = []Size{SizeOneSize, SizeSmall, SizeMedium, SizeLarge}

var sizeNames = map[Size]string{
	SizeOneSize: "One Size",
	SizeSmall:   "Small",
	SizeMedium:  "Medium",
	SizeLarge:   "Large",
}

// Categories returns the category enumeration in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Sizes returns the size enumeration in display order.
func Sizes() []Size {
	return append([]Size(nil), sizes...)
}

// ParseCategory matches a category case-insensitively.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range categories {
		if strings.EqualFold(string(c), raw) {
			return c, true
		}
	}
	return "", false
}

// ParseSize matches a size code case-insensitively.
func ParseSize(raw string) (Size, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range sizes {
		if strings.EqualFold(string(s), raw) {
			return s, true
		}
	}
	return "", false
}

// DisplayName returns the human label for the size code.
func (s Size) DisplayName() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return string(s)
}

// Product is an immutable catalog entry.
type Product struct {
	ID               string
	Name             string
	Category         Category
	Description      string
	Price            float64
	Colors           []string
	Sizes            []Size
	Image            string
	AdditionalImages []string
	Weight           string
	Dimensions       string
}

// Validate enforces the catalog invariants on a product.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if _, ok := ParseCategory(string(p.Category)); !ok {
		return ErrInvalidCategory
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if len(p.Colors) == 0 {
		return ErrNoColors
	}
	if len(p.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, s := range p.Sizes {
		if _, ok := ParseSize(string(s)); !ok {
			return ErrInvalidSize
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared catalog state.
func (p Product) Clone() Product {
	clone := p
	clone.Colors = append([]string(nil), p.Colors...)
	clone.Sizes = append([]Size(nil), p.Sizes...)
	clone.AdditionalImages = append([]string(nil), p.AdditionalImages...)
	return clone
}

// SizeCodes returns the sizes as plain strings.
func (p Product) SizeCodes() []string {
	out := make([]string, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		out = append(out, string(s))
	}
	return out
}

// HasColor reports whether the product offers the color token.
func (p Product) HasColor(token string) bool {
	for _, c := range p.Colors {
		if strings.EqualFold(c, token) {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is offered in the size.
func (p Product) HasSize(size Size) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
