package model

// Category is the fixed classification tag attached to a product. It is
// persisted by name, so the database column stays readable.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns every recognized category tag.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// Valid reports whether c is one of the recognized category tags.
func (c Category) Valid() bool {
	switch c {
	case CategoryUnknown, CategoryCloths, CategoryFood,
		CategoryHousewares, CategoryAutomotive, CategoryTools:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a category name into a Category, failing with a
// DataValidationError when the name is not recognized.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.Valid() {
		return "", dataValidationErrorf("Invalid category: %s", name)
	}
	return c, nil
}
