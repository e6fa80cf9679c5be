package models

// Fixed transaction categories. The set is closed: every transaction
// carries exactly one of these values, credits included.
const (
	CategoryUtilities      = "Utilities"
	CategoryPersonal       = "Personal"
	CategoryConsumption    = "Consumption"
	CategoryTransportation = "Transportation"
	CategoryEducation      = "Education"
)

// AllCategories returns the valid categories in canonical order.
// The order doubles as the tie-break rank when sorting category totals.
func AllCategories() []string {
	return []string{
		CategoryUtilities,
		CategoryPersonal,
		CategoryConsumption,
		CategoryTransportation,
		CategoryEducation,
	}
}

// CategoryRank returns the canonical position of a category, or -1 for
// unknown values.
func CategoryRank(category string) int {
	for i, c := range AllCategories() {
		if c == category {
			return i
		}
	}
	return -1
}

// IsValidCategory checks if a category string is one of the fixed values
func IsValidCategory(category string) bool {
	return CategoryRank(category) >= 0
}
