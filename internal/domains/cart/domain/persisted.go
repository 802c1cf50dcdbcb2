package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedCart marks stored cart data that cannot be decoded.
var ErrMalformedCart = errors.New("stored cart is malformed")

// storedItem is the persisted layout of a line item: the product fields
// flattened alongside the line fields.
type storedItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Price            float64  `json:"price"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	Colors           []string `json:"colors"`
	Sizes            []string `json:"sizes"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	Weight           string   `json:"weight,omitempty"`
	Dimensions       string   `json:"dimensions,omitempty"`
	CartID           string   `json:"cartId"`
	Quantity         int      `json:"quantity"`
	SelectedColor    string   `json:"selectedColor"`
	SelectedSize     string   `json:"selectedSize"`
}

// Encode serialises the lines as a JSON array.
func Encode(items []LineItem) ([]byte, error) {
	stored := make([]storedItem, 0, len(items))
	for _, item := range items {
		stored = append(stored, storedItem{
			ID:               item.ID,
			Name:             item.Name,
			Category:         item.Category,
			Price:            item.Price,
			Image:            item.Image,
			Description:      item.Description,
			Colors:           item.Colors,
			Sizes:            item.Sizes,
			AdditionalImages: item.AdditionalImages,
			Weight:           item.Weight,
			Dimensions:       item.Dimensions,
			CartID:           item.CartID,
			Quantity:         item.Quantity,
			SelectedColor:    item.SelectedColor,
			SelectedSize:     item.SelectedSize,
		})
	}
	return json.Marshal(stored)
}

// Decode parses a persisted JSON array. A JSON null decodes to an empty list.
func Decode(data []byte) ([]LineItem, error) {
	var stored []storedItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCart, err)
	}
	items := make([]LineItem, 0, len(stored))
	for _, s := range stored {
		items = append(items, LineItem{
			Product: Product{
				ID:               s.ID,
				Name:             s.Name,
				Category:         s.Category,
				Description:      s.Description,
				Price:            s.Price,
				Colors:           s.Colors,
				Sizes:            s.Sizes,
				Image:            s.Image,
				AdditionalImages: s.AdditionalImages,
				Weight:           s.Weight,
				Dimensions:       s.Dimensions,
			},
			CartID:        s.CartID,
			Quantity:      s.Quantity,
			SelectedColor: s.SelectedColor,
			SelectedSize:  s.SelectedSize,
		})
	}
	return items, nil
}
