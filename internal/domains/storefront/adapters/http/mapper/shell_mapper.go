package mapper

import (
	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
)

// Filters is the transport shape of a view's filter panel.
type Filters struct {
	Categories  []string `json:"categories"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	ActiveCount int      `json:"activeCount"`
}

// State is the transport shape of a session's shell.
type State struct {
	Search    string  `json:"search"`
	View      string  `json:"view"`
	Path      string  `json:"path"`
	ProductID string  `json:"productId,omitempty"`
	Filters   Filters `json:"filters"`
}

// Navigation tells the client where to go.
type Navigation struct {
	View       string `json:"view"`
	Path       string `json:"path"`
	ProductID  string `json:"productId,omitempty"`
	Redirected bool   `json:"redirected"`
}

// SearchRequest is the body of PUT /v1/session/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// ViewRequest is the body of PUT /v1/session/view.
type ViewRequest struct {
	View      string `json:"view" binding:"required"`
	ProductID string `json:"productId"`
}

// FilterToggle is the body of POST /v1/session/filters.
type FilterToggle struct {
	Dimension string `json:"dimension" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

func FromState(s domain.State) State {
	return State{
		Search:    s.Search,
		View:      string(s.View),
		Path:      s.View.Path(s.ProductID),
		ProductID: s.ProductID,
		Filters:   FromFilterState(s.Filters),
	}
}

func FromFilterState(f catalogdomain.FilterState) Filters {
	return Filters{
		Categories:  nonNil(f.Categories),
		Sizes:       nonNil(f.Sizes),
		Colors:      nonNil(f.Colors),
		ActiveCount: f.ActiveCount(),
	}
}

func FromNavigation(n domain.Navigation) Navigation {
	return Navigation{
		View:       string(n.View),
		Path:       n.View.Path(n.ProductID),
		ProductID:  n.ProductID,
		Redirected: n.Redirected,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return append([]string(nil), values...)
}
