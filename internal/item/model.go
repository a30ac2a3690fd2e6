package item

// Item is the single persisted entity of the service.
type Item struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

// HTTPError represents a standard error in JSON.
type HTTPError struct {
	Error string `json:"error"`
}
