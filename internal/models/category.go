package models

import "strings"

// Category is one of a closed set of labels. Anything outside the set is treated as Other.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryRent           Category = "Rent"
	CategoryUtilities      Category = "Utilities"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategorySalary         Category = "Salary"
	CategoryInvestment     Category = "Investment"
	CategoryOther          Category = "Other"
)

// DefaultColor is used for categories without an entry in the color table.
const DefaultColor = "#A8A8A8"

// AllCategories lists the closed set in display order.
var AllCategories = []Category{
	CategoryFood,
	CategoryRent,
	CategoryUtilities,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategorySalary,
	CategoryInvestment,
	CategoryOther,
}

// ParseCategory matches s case-insensitively against the closed set. Empty or unknown input yields Other.
func ParseCategory(s string) Category {
	key := normalizeKey(s)
	for _, c := range AllCategories {
		if strings.ToLower(string(c)) == key {
			return c
		}
	}
	return CategoryOther
}

// Normalize maps empty or unknown categories to Other.
func (c Category) Normalize() Category {
	for _, known := range AllCategories {
		if c == known {
			return c
		}
	}
	return ParseCategory(string(c))
}

// CategoryColor returns the chart color for a category.
func CategoryColor(c Category) string {
	switch c {
	case CategoryFood:
		return "#FF6B6B"
	case CategoryRent:
		return "#4ECDC4"
	case CategoryUtilities:
		return "#45B7D1"
	case CategoryTransportation:
		return "#5e767a"
	case CategoryEntertainment:
		return "#FFEEAD"
	case CategoryShopping:
		return "#99C1B9"
	case CategoryHealthcare:
		return "#9B5DE5"
	case CategoryEducation:
		return "#F15BB5"
	case CategorySalary:
		return "#00BBF9"
	case CategoryInvestment:
		return "#00F5D4"
	default:
		return DefaultColor
	}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
