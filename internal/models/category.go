package models

import "errors"

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrMissingCategoryName = errors.New("category name is required")
)

// Category is a user-facing label qualifying a transaction, scoped to
// either income or expense. The client treats categories as read-only.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Validate checks the invariants the API promises for a category.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrMissingCategoryName
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

// FilterCategoriesByType returns the categories whose type matches,
// preserving API order.
func FilterCategoriesByType(categories []Category, transactionType string) []Category {
	filtered := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == transactionType {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
