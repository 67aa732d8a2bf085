package dto

import "time"

type CreateTodoRequest struct {
	// ID is honored only by the in-memory store; the Postgres store always
	// assigns its own.
	ID   int64  `json:"id"`
	Task string `json:"task" binding:"required,min=1,max=1000"`
	Done bool   `json:"done"`
}

// UpdateTodoRequest replaces both mutable fields. Done is a pointer so that
// an explicit false passes the required binding; partial updates are not
// supported.
type UpdateTodoRequest struct {
	Task string `json:"task" binding:"required,min=1,max=1000"`
	Done *bool  `json:"done" binding:"required"`
}

type TodoResponse struct {
	ID        int64     `json:"id"`
	Task      string    `json:"task"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
