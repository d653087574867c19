package domain

// Course is a catalog entry available for purchase.
type Course struct {
	ID          string
	Name        string
	Price       float64
	Description string
	ImageURL    string
	TrailerURL  string
}
