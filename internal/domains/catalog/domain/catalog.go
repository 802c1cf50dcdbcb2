package domain

// StaticCatalog returns the built-in product list in display order.
func StaticCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Fine Diamond Stole 100% Cashmere",
			Category:    CategoryShawl,
			Description: "A blend of silk and organic bamboo, offering unmatched drape. Hand-loom woven by master artisans in the valley.",
			Price:       150.00,
			Colors:      []string{"red", "gray"},
			Sizes:       []Size{SizeOneSize},
			Image:       "/images/home/item1/01.jpeg",
			AdditionalImages: []string{
				"/images/home/item1/02.jpeg",
				"/images/home/item1/03.jpeg",
				"/images/home/item1/04.jpeg",
				"/images/home/item1/05.jpeg",
			},
			Weight:     "120gms",
			Dimensions: "70cm x 200cm",
		},
		{
			ID:          "2",
			Name:        "100% Green Pigeon Pashmina Printed",
			Category:    CategoryShawl,
			Description: "Hand-woven with golden bamboo threads that catch the morning light perfectly.",
			Price:       124.00,
			Colors:      []string{"#1C2832", "#ACCFBC"},
			Sizes:       []Size{SizeOneSize},
			Image:       "/images/home/item2/01.jpeg",
			AdditionalImages: []string{
				"/images/home/item2/02.jpeg",
				"/images/home/item2/03.jpeg",
			},
			Weight:     "150gms",
			Dimensions: "75cm x 210cm",
		},
		{
			ID:          "3",
			Name:        "100% Pashmina Printed Stole",
			Category:    CategoryStole,
			Description: "Narrow elegant stole naturally dyed with wild mountain flower petals.",
			Price:       124.00,
			Colors:      []string{"#F2BA85", "#375898"},
			Sizes:       []Size{SizeSmall, SizeMedium},
			Image:       "/images/home/item3/01.jpeg",
			AdditionalImages: []string{
				"/images/home/item3/02.jpeg",
				"/images/home/item3/03.jpeg",
			},
			Weight:     "80gms",
			Dimensions: "50cm x 180cm",
		},
		{
			ID:               "4",
			Name:             "100% Pashmina Printed Stole",
			Category:         CategoryStole,
			Description:      "Deep indigo saturation with a formal sheen. Perfect for evening occasions.",
			Price:            124.00,
			Colors:           []string{"#468DC7", "#705C5E"},
			Sizes:            []Size{SizeMedium, SizeLarge},
			Image:            "/images/home/item4/01.jpeg",
			AdditionalImages: []string{"/images/home/item4/02.jpeg"},
			Weight:           "90gms",
			Dimensions:       "50cm x 180cm",
		},
	}
}

// Recommend returns up to max products sharing the category of the given
// product, excluding the product itself, in catalog order.
func Recommend(catalog []Product, product Product, max int) []Product {
	out := make([]Product, 0, max)
	for _, p := range catalog {
		if len(out) >= max {
			break
		}
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}
