package domain

import "strings"

// FilterState holds the active category, size and color selections of a
// single view. The search string is owned by the shell, not the view.
type FilterState struct {
	Categories []string
	Sizes      []string
	Colors     []string
}

// Toggle adds the token to the dimension's set when absent and removes it
// when present.
func (f *FilterState) Toggle(dimension Dimension, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	switch dimension {
	case DimensionCategory:
		f.Categories = toggle(f.Categories, token)
	case DimensionSize:
		f.Sizes = toggle(f.Sizes, token)
	case DimensionColor:
		f.Colors = toggle(f.Colors, token)
	default:
		return ErrInvalidDimension
	}
	return nil
}

// Clear empties all three sets.
func (f *FilterState) Clear() {
	f.Categories = nil
	f.Sizes = nil
	f.Colors = nil
}

// ActiveCount is the number of selections across all dimensions.
func (f FilterState) ActiveCount() int {
	return len(f.Categories) + len(f.Sizes) + len(f.Colors)
}

// Active reports whether any selection is in effect.
func (f FilterState) Active() bool {
	return f.ActiveCount() > 0
}

// Criteria combines the state with a search string.
func (f FilterState) Criteria(search string) Criteria {
	return Criteria{
		Search:     search,
		Categories: append([]string(nil), f.Categories...),
		Sizes:      append([]string(nil), f.Sizes...),
		Colors:     append([]string(nil), f.Colors...),
	}
}

// Clone returns an independent copy.
func (f FilterState) Clone() FilterState {
	return FilterState{
		Categories: append([]string(nil), f.Categories...),
		Sizes:      append([]string(nil), f.Sizes...),
		Colors:     append([]string(nil), f.Colors...),
	}
}

func toggle(set []string, token string) []string {
	for i, v := range set {
		if strings.EqualFold(v, token) {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(set, token)
}
