package domain

// CartItem is a catalog course staged for checkout in a session cart.
type CartItem struct {
	CourseID string  `json:"course_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}
