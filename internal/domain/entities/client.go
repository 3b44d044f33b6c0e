package entities

import "time"

// Client is owned by the client directory; the lifecycle core only reads it.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
