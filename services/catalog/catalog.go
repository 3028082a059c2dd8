// Package catalog holds the static price list. Content is reference data
// loaded once at process start, never derived from input.
package catalog

import "laundrybook/models"

// Variant is a sub-selection of an item with its own price, chosen before
// the item is added to the cart.
type Variant struct {
	Type        models.WashType `json:"type"`
	Label       string          `json:"label"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
}

// Item is one orderable service. Items with Variants carry a nominal Price
// for display only; the recorded line item always takes the variant price.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	PriceLabel string    `json:"priceLabel"`
	Badges     []string  `json:"badges"`
	Variants   []Variant `json:"variants,omitempty"`
}

// Category groups items under a display name.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

var categories = []Category{
	{
		Name: "Laundry",
		Items: []Item{
			{
				ID:         "wash",
				Name:       "Wash",
				Price:      18.99,
				PriceLabel: "from £18.99/bag",
				Badges:     []string{"Wash", "Tumble-dry", "In a bag"},
				Variants: []Variant{
					{Type: models.WashTypeMix, Label: "Mix Wash", Price: 18.99, Description: "All items washed together in one load"},
					{Type: models.WashTypeSeparate, Label: "Separate Wash", Price: 24.99, Description: "Lights and darks washed separately"},
				},
			},
			{
				ID:         "wash-iron",
				Name:       "Wash & Iron",
				Price:      2.50,
				PriceLabel: "from £2.50/item",
				Badges:     []string{"Wash", "Tumble-dry", "Ironing", "On hangers"},
			},
		},
	},
	{
		Name: "Dry Cleaning",
		Items: []Item{
			{
				ID:         "dry-cleaning",
				Name:       "Dry Cleaning",
				Price:      6.99,
				PriceLabel: "from £6.99/item",
				Badges:     []string{"Dry cleaning", "Ironing", "On hangers"},
			},
		},
	},
	{
		Name: "Ironing",
		Items: []Item{
			{
				ID:         "ironing",
				Name:       "Ironing Only",
				Price:      2.00,
				PriceLabel: "from £2.00/item",
				Badges:     []string{"Ironing", "On hangers"},
			},
		},
	},
	{
		Name: "Bedding & Bulky",
		Items: []Item{
			{
				ID:         "duvets",
				Name:       "Duvets & Bulky Items",
				Price:      15.99,
				PriceLabel: "from £15.99/item",
				Badges:     []string{"Custom cleaning"},
			},
		},
	},
	{
		Name: "Alterations",
		Items: []Item{
			{
				ID:         "repairs",
				Name:       "Repairs",
				Price:      5.99,
				PriceLabel: "from £5.99/item",
				Badges:     []string{"Buttons and zippers"},
			},
		},
	},
}

// Categories returns the full categorized price list.
func Categories() []Category {
	return categories
}

// FindItem looks an item up by ID across all categories.
func FindItem(id string) (Item, bool) {
	for _, c := range categories {
		for _, it := range c.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// HasVariants reports whether the item requires a variant choice.
func (i Item) HasVariants() bool {
	return len(i.Variants) > 0
}

// VariantFor returns the variant matching the given wash type.
func (i Item) VariantFor(t models.WashType) (Variant, bool) {
	for _, v := range i.Variants {
		if v.Type == t {
			return v, true
		}
	}
	return Variant{}, false
}
