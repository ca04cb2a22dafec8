package catalog

import (
	"errors"
	"strings"
)

// Category groups items by the kind of work they are built for.
type Category string

const (
	CategoryFarming      Category = "FARMING"
	CategoryLandscaping  Category = "LANDSCAPING"
	CategoryConstruction Category = "CONSTRUCTION"
)

// Item represents a single machine offered for sale.
type Item struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Condition string   `json:"condition"`
	Category  Category `json:"category"`
	ImageURL  string   `json:"imageUrl"`
}

// ParseCategory maps free text onto a known category. Matching is
// case-insensitive and exact after trimming.
func ParseCategory(text string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "farming":
		return CategoryFarming, true
	case "landscaping":
		return CategoryLandscaping, true
	case "construction":
		return CategoryConstruction, true
	default:
		return "", false
	}
}

// Label returns the lower-case form shown to users.
func (c Category) Label() string {
	return strings.ToLower(string(c))
}

func ValidateCategory(c Category) error {
	switch c {
	case CategoryFarming, CategoryLandscaping, CategoryConstruction:
		return nil
	default:
		return errors.New("invalid category")
	}
}

func ValidateItem(it *Item) error {
	if it.ID <= 0 {
		return errors.New("item id must be positive")
	}
	if strings.TrimSpace(it.Name) == "" {
		return errors.New("item name is required")
	}
	if it.Price <= 0 {
		return errors.New("item price must be positive")
	}
	return ValidateCategory(it.Category)
}
