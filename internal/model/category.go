// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Category is a closed enumeration of budget buckets. Each category carries a
// stable string code of the form "group:name" that is persisted and shown to
// users; the set is fixed at build time.
type Category string

// All known categories.
const (
	CategoryFood        Category = "needs:food"
	CategoryTransport   Category = "needs:transport"
	CategoryFastfood    Category = "fun:fastfood"
	CategoryElectronics Category = "wants:electronics"
	CategoryFinance     Category = "skip:finance"
	CategoryDigital     Category = "other:digital"
	CategoryHealth      Category = "needs:health"
	CategoryUtilities   Category = "needs:utilities"
	CategoryHousehold   Category = "needs:household"
	CategoryClothing    Category = "wants:clothing"
	CategoryBeauty      Category = "wants:beauty"
	CategoryLeisure     Category = "fun:leisure"
	CategoryPets        Category = "needs:pets"

	// CategoryUnknown marks an expense the classifier could not place with
	// confidence. Callers must treat it as "needs manual review", not as a
	// regular bucket.
	CategoryUnknown Category = "unknown:check_me"
)

// AllCategories returns every category in declaration order, including
// CategoryUnknown as the final element.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryFastfood,
		CategoryElectronics,
		CategoryFinance,
		CategoryDigital,
		CategoryHealth,
		CategoryUtilities,
		CategoryHousehold,
		CategoryClothing,
		CategoryBeauty,
		CategoryLeisure,
		CategoryPets,
		CategoryUnknown,
	}
}

// ParseCategory validates a raw code against the known category set.
func ParseCategory(code string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category code: %q", code)
}

// Code returns the stable string code, e.g. "needs:food".
func (c Category) Code() string {
	return string(c)
}

// Group returns the part of the code before the colon, e.g. "needs".
func (c Category) Group() string {
	group, _, _ := strings.Cut(string(c), ":")
	return group
}

// Name returns the part of the code after the colon, e.g. "food".
func (c Category) Name() string {
	_, name, _ := strings.Cut(string(c), ":")
	return name
}

// IsUnknown reports whether the category is the reserved review sentinel.
func (c Category) IsUnknown() bool {
	return c == CategoryUnknown
}
