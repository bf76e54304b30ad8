// Package ingest creates books from Open Library editions looked up by ISBN.
package ingest

import "errors"

var (
	ErrInvalidISBN  = errors.New("not a valid ISBN-10 or ISBN-13")
	ErrNoEdition    = errors.New("no edition found for isbn")
	ErrISBNNotSaved = errors.New("book created but isbn could not be stored")
)

// MaxBatch caps the number of ISBNs imported in one request.
const MaxBatch = 20

// Result reports what happened to one requested ISBN.
type Result struct {
	ISBN   string `json:"isbn"`
	BookID int64  `json:"book_id,omitempty"`
	Title  string `json:"title,omitempty"`
	Error  string `json:"error,omitempty"`
}
