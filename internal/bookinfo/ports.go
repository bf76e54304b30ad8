package bookinfo

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=bookinfo

// Repository defines the storage primitives for the books_info table.
type Repository interface {
	FindByRecordID(ctx context.Context, recordID int64) (Record, error)
	Insert(ctx context.Context, recordID int64, isbn string) error
	Update(ctx context.Context, recordID int64, isbn string) error
	DeleteByRecordID(ctx context.Context, recordID int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]Record, int, error)
}

// SchemaCreator creates the books_info table when it does not exist yet.
type SchemaCreator interface {
	CreateTable(ctx context.Context) error
}
