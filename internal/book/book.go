package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Taxonomies attached to books. Both are flat term lists.
const (
	TaxonomyPublisher = "publisher"
	TaxonomyAuthors   = "authors"
)

const (
	StatusDraft   = "draft"
	StatusPublish = "publish"
)

// Book is the book content type.
type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Status     string    `json:"status"`
	Publishers []string  `json:"publishers"`
	Authors    []string  `json:"authors"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Input is the writable part of a book as accepted by create and update.
type Input struct {
	Title      string   `json:"title" validate:"required,max=255"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt" validate:"max=1000"`
	Status     string   `json:"status" validate:"omitempty,oneof=draft publish"`
	Publishers []string `json:"publishers" validate:"max=20,dive,required,max=200"`
	Authors    []string `json:"authors" validate:"max=50,dive,required,max=200"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Status    string
	Publisher string
	Author    string
	Search    string
	Limit     int
	Offset    int
}
