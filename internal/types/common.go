package types

// Page is one page of rows plus its pagination metadata. Total counts every
// row matching the filters, ignoring pagination.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Message is the outcome envelope returned by create, update and delete.
type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
