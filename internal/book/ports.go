package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id int64) (Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q Query) ([]Book, int, error)
	Titles(ctx context.Context, ids []int64) (map[int64]string, error)
}

// ISBNRemover drops the ISBN attached to a record.
type ISBNRemover interface {
	Delete(ctx context.Context, recordID int64) bool
}
