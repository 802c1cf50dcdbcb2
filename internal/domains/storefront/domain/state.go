package domain

import (
	"errors"
	"strings"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
)

var ErrMissingProductID = errors.New("product detail requires a product id")

// State is one shopper's shell: the shared search box, the current view
// and the filter panel of that view.
type State struct {
	SessionID string
	Search    string
	View      View
	ProductID string
	Filters   catalogdomain.FilterState
}

// NewState starts a session on the home view with nothing selected.
func NewState(sessionID string) State {
	return State{SessionID: sessionID, View: ViewHome}
}

// Navigation tells the client which view to show after a change.
type Navigation struct {
	View       View
	ProductID  string
	Redirected bool
}

// Transition describes what a navigation did to the state.
type Transition struct {
	Navigation
	FiltersReset bool
	MountReviews bool
}

// SetSearch stores the query as typed. A query with visible text moves
// the shopper to the product listing.
func (s *State) SetSearch(query string) Navigation {
	s.Search = query
	if strings.TrimSpace(query) != "" && s.View != ViewProducts {
		t := s.moveTo(ViewProducts, "")
		t.Redirected = true
		return t.Navigation
	}
	return Navigation{View: s.View, ProductID: s.ProductID}
}

// Navigate switches view. The filter panel resets whenever the page
// changes, and entering a product's detail page remounts its reviews.
func (s *State) Navigate(view View, productID string) (Transition, error) {
	productID = strings.TrimSpace(productID)
	if view == ViewProductDetail && productID == "" {
		return Transition{}, ErrMissingProductID
	}
	if view != ViewProductDetail {
		productID = ""
	}
	return s.moveTo(view, productID), nil
}

func (s *State) moveTo(view View, productID string) Transition {
	t := Transition{Navigation: Navigation{View: view, ProductID: productID}}
	if view == s.View && productID == s.ProductID {
		return t
	}
	s.View = view
	s.ProductID = productID
	t.FiltersReset = s.Filters.Active()
	s.Filters.Clear()
	t.MountReviews = view == ViewProductDetail
	return t
}

// Criteria is the catalog query the current view renders.
func (s State) Criteria() catalogdomain.Criteria {
	return s.Filters.Criteria(s.Search)
}

// Clone returns an independent copy.
func (s State) Clone() State {
	s.Filters = s.Filters.Clone()
	return s
}
