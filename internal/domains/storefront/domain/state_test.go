package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
)

func TestSetSearch_RedirectsToProducts(t *testing.T) {
	st := NewState("s1")

	nav := st.SetSearch("pash")
	assert.True(t, nav.Redirected)
	assert.Equal(t, ViewProducts, nav.View)
	assert.Equal(t, "pash", st.Search)

	nav = st.SetSearch("pashmina")
	assert.False(t, nav.Redirected)
	assert.Equal(t, ViewProducts, nav.View)
}

func TestSetSearch_BlankQueryStaysPut(t *testing.T) {
	st := NewState("s1")
	nav := st.SetSearch("   ")
	assert.False(t, nav.Redirected)
	assert.Equal(t, ViewHome, nav.View)
	assert.Equal(t, "   ", st.Search)
}

func TestNavigate_ResetsFiltersOnViewChange(t *testing.T) {
	st := NewState("s1")
	require.NoError(t, st.Filters.Toggle(catalogdomain.DimensionColor, "red"))

	tr, err := st.Navigate(ViewHome, "")
	require.NoError(t, err)
	assert.False(t, tr.FiltersReset)
	assert.True(t, st.Filters.Active())

	tr, err = st.Navigate(ViewProducts, "ignored")
	require.NoError(t, err)
	assert.True(t, tr.FiltersReset)
	assert.False(t, st.Filters.Active())
	assert.Empty(t, st.ProductID)
}

func TestNavigate_ProductDetailMountsReviews(t *testing.T) {
	st := NewState("s1")

	_, err := st.Navigate(ViewProductDetail, " ")
	require.ErrorIs(t, err, ErrMissingProductID)

	tr, err := st.Navigate(ViewProductDetail, "1")
	require.NoError(t, err)
	assert.True(t, tr.MountReviews)

	tr, err = st.Navigate(ViewProductDetail, "1")
	require.NoError(t, err)
	assert.False(t, tr.MountReviews)

	tr, err = st.Navigate(ViewProductDetail, "2")
	require.NoError(t, err)
	assert.True(t, tr.MountReviews)
	assert.Equal(t, "2", st.ProductID)
}

func TestParseView(t *testing.T) {
	v, ok := ParseView(" Color_Chart ")
	assert.True(t, ok)
	assert.Equal(t, ViewColorChart, v)

	v, ok = ParseView("nowhere")
	assert.False(t, ok)
	assert.Equal(t, ViewHome, v)

	assert.Equal(t, "/product/3", ViewProductDetail.Path("3"))
	assert.Equal(t, "/collections", ViewProducts.Path(""))
	assert.Len(t, Views(), 10)
}
