package domain

import "strings"

// View is a top-level page of the storefront.
type View string

const (
	ViewHome            View = "home"
	ViewProducts        View = "products"
	ViewColorChart      View = "color_chart"
	ViewProductDetail   View = "product_detail"
	ViewStory           View = "story"
	ViewBlog            View = "blog"
	ViewAuth            View = "auth"
	ViewCart            View = "cart"
	ViewPrivacyPolicy   View = "privacy_policy"
	ViewShippingReturns View = "shipping_returns"
)

var views = []View{
	ViewHome, ViewProducts, ViewColorChart, ViewProductDetail, ViewStory,
	ViewBlog, ViewAuth, ViewCart, ViewPrivacyPolicy, ViewShippingReturns,
}

var paths = map[View]string{
	ViewHome:            "/",
	ViewProducts:        "/collections",
	ViewColorChart:      "/color-chart",
	ViewProductDetail:   "/product/",
	ViewStory:           "/story",
	ViewBlog:            "/blog",
	ViewAuth:            "/login",
	ViewCart:            "/cart",
	ViewPrivacyPolicy:   "/privacy-policy",
	ViewShippingReturns: "/shipping-returns",
}

// Views lists every view in navigation order.
func Views() []View {
	return append([]View(nil), views...)
}

// ParseView resolves a view name. Unknown names fall back to home.
func ParseView(raw string) (View, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, v := range views {
		if string(v) == raw {
			return v, true
		}
	}
	return ViewHome, false
}

// Path is the browser path a client renders the view under.
func (v View) Path(productID string) string {
	if v == ViewProductDetail {
		return paths[v] + productID
	}
	if p, ok := paths[v]; ok {
		return p
	}
	return paths[ViewHome]
}

// HasFilters reports whether the view shows the product filter panel.
func (v View) HasFilters() bool {
	return v == ViewHome || v == ViewProducts
}
