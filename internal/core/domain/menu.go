package domain

// FoodItem is a single entry on the menu.
type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
}

// DefaultMenu returns the seed menu loaded into an empty store at boot.
func DefaultMenu() []FoodItem {
	return []FoodItem{
		{
			ID:          "1",
			Name:        "Nasi Goreng",
			Description: "Nasi goreng spesial dengan telur dan kerupuk",
			Price:       35000,
			Category:    "Makanan",
			Image:       "/images/nasi-goreng.jpg",
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Mie Ayam",
			Description: "Mie ayam dengan pangsit dan jamur",
			Price:       28000,
			Category:    "Makanan",
			Image:       "/images/mie-ayam.jpg",
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "Bakso",
			Description: "Bakso sapi dengan kuah gurih",
			Price:       25000,
			Category:    "Makanan",
			Image:       "/images/bakso.jpg",
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Es Teh",
			Description: "Es teh manis segar",
			Price:       5000,
			Category:    "Minuman",
			Image:       "/images/es-teh.jpg",
			Available:   true,
		},
		{
			ID:          "5",
			Name:        "Jus Alpukat",
			Description: "Jus alpukat dengan susu dan gula aren",
			Price:       18000,
			Category:    "Minuman",
			Image:       "/images/jus-alpukat.jpg",
			Available:   true,
		},
	}
}
