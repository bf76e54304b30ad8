// Package bookinfo stores the single ISBN attached to a book record.
package bookinfo

import "errors"

// TableName is the table holding one ISBN per record.
const TableName = "books_info"

// MaxISBNLength is the width of the isbn column.
const MaxISBNLength = 32

var (
	// ErrNotFound is returned when no row exists for a record id.
	ErrNotFound = errors.New("bookinfo: record not found")
	// ErrInvalidRecordID is returned for record ids that are not positive.
	ErrInvalidRecordID = errors.New("bookinfo: record id must be positive")
	// ErrISBNTooLong is returned when an ISBN does not fit the isbn column.
	ErrISBNTooLong = errors.New("bookinfo: isbn longer than 32 characters")
)

// Record is one row of the books_info table.
type Record struct {
	ID       int64  `json:"id"`
	RecordID int64  `json:"record_id"`
	ISBN     string `json:"isbn"`
}

func checkInput(recordID int64, isbn string) error {
	if recordID <= 0 {
		return ErrInvalidRecordID
	}
	if len(isbn) > MaxISBNLength {
		return ErrISBNTooLong
	}
	return nil
}
