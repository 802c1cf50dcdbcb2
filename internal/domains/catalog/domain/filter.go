package domain

import (
	"errors"
	"strings"
)

// Dimension names one of the filterable product attributes.
type Dimension string

const (
	DimensionCategory Dimension = "category"
	DimensionSize     Dimension = "size"
	DimensionColor    Dimension = "color"
)

var ErrInvalidDimension = errors.New("filter dimension is invalid")

// ParseDimension validates a dimension name.
func ParseDimension(raw string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(raw))); d {
	case DimensionCategory, DimensionSize, DimensionColor:
		return d, nil
	}
	return "", ErrInvalidDimension
}

// Criteria is the full predicate set applied by Filter. Empty sets pass
// every product.
type Criteria struct {
	Search     string
	Categories []string
	Sizes      []string
	Colors     []string
}

// Filter returns the products satisfying every predicate of the criteria,
// preserving catalog order. It never mutates its inputs.
func Filter(catalog []Product, criteria Criteria) []Product {
	search := strings.ToLower(criteria.Search)
	colors := resolveColors(criteria.Colors)
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(criteria.Categories) > 0 && !containsFold(criteria.Categories, string(p.Category)) {
			continue
		}
		if len(criteria.Sizes) > 0 && !matchesSize(p, criteria.Sizes) {
			continue
		}
		if len(criteria.Colors) > 0 && !matchesColor(p, colors) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Limit truncates the list to at most n entries; n <= 0 keeps everything.
func Limit(products []Product, n int) []Product {
	if n <= 0 || n >= len(products) {
		return products
	}
	return products[:n]
}

func matchesSearch(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(string(p.Category)), needle)
}

func matchesSize(p Product, selected []string) bool {
	for _, s := range p.Sizes {
		if containsFold(selected, string(s)) {
			return true
		}
	}
	return false
}

// matchesColor fails closed: a selection whose resolved tokens hit none of
// the product colors excludes the product.
func matchesColor(p Product, resolved map[string]struct{}) bool {
	for _, c := range p.Colors {
		if _, ok := resolved[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

func resolveColors(selected []string) map[string]struct{} {
	out := make(map[string]struct{}, len(selected)*2)
	for _, token := range selected {
		for _, r := range ResolveColor(token) {
			out[r] = struct{}{}
		}
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
