package domain

import "strings"

// Swatch is a named entry of the filter color palette.
type Swatch struct {
	Name string
	Hex  string
}

var palette = []Swatch{
	{Name: "Natural", Hex: "#ffffff"},
	{Name: "Indigo", Hex: "#1e3a8a"},
	{Name: "Saffron", Hex: "#d97706"},
	{Name: "Forest", Hex: "#064e3b"},
	{Name: "Slate", Hex: "#4a5568"},
}

// Palette returns the filterable colors in display order.
func Palette() []Swatch {
	return append([]Swatch(nil), palette...)
}

// ResolveColor expands a selected color token into the tokens a product
// color may equal: the token itself plus the palette hex when the token
// names a palette swatch. Results are lower-cased.
func ResolveColor(token string) []string {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	resolved := []string{strings.ToLower(token)}
	for _, swatch := range palette {
		if strings.EqualFold(swatch.Name, token) {
			resolved = append(resolved, strings.ToLower(swatch.Hex))
			break
		}
	}
	return resolved
}
