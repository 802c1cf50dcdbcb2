package mapper

import (
	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

// Product is the transport shape served by the catalog endpoints.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Colors           []string `json:"colors"`
	Sizes            []string `json:"sizes"`
	Image            string   `json:"image"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	Weight           string   `json:"weight,omitempty"`
	Dimensions       string   `json:"dimensions,omitempty"`
}

// SizeOption pairs a size code with its label.
type SizeOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Swatch is a palette entry.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Facets lists the filterable values.
type Facets struct {
	Categories []string     `json:"categories"`
	Sizes      []SizeOption `json:"sizes"`
	Colors     []Swatch     `json:"colors"`
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(p *catalogdomain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{
		ID:               p.ID,
		Name:             p.Name,
		Category:         string(p.Category),
		Description:      p.Description,
		Price:            p.Price,
		Colors:           append([]string{}, p.Colors...),
		Sizes:            p.SizeCodes(),
		Image:            p.Image,
		AdditionalImages: append([]string(nil), p.AdditionalImages...),
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
	}
}

// FromDomainProducts converts a list, never returning nil.
func FromDomainProducts(list []catalogdomain.Product) []Product {
	out := make([]Product, 0, len(list))
	for i := range list {
		out = append(out, FromDomainProduct(&list[i]))
	}
	return out
}

// FromFacets converts the facet listing.
func FromFacets(f catalogports.Facets) Facets {
	out := Facets{
		Categories: make([]string, 0, len(f.Categories)),
		Sizes:      make([]SizeOption, 0, len(f.Sizes)),
		Colors:     make([]Swatch, 0, len(f.Palette)),
	}
	for _, c := range f.Categories {
		out.Categories = append(out.Categories, string(c))
	}
	for _, s := range f.Sizes {
		out.Sizes = append(out.Sizes, SizeOption{Code: string(s), Name: s.DisplayName()})
	}
	for _, sw := range f.Palette {
		out.Colors = append(out.Colors, Swatch{Name: sw.Name, Hex: sw.Hex})
	}
	return out
}
