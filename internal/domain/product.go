package domain

// CategoryAll is the catalog filter value that matches every category.
const CategoryAll = "all"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Category    string
	ImageURL    string
	Material    string
	InStock     bool
	Featured    bool
}
