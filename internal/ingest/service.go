package ingest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookmanager/internal/book"
	"bookmanager/internal/isbn"
	"bookmanager/internal/platform/openlibrary"
)

type EditionFinder interface {
	LookupISBN(ctx context.Context, isbn string) (openlibrary.Edition, error)
}

type BookCreator interface {
	Create(ctx context.Context, in book.Input) (book.Book, error)
}

type ISBNSaver interface {
	Save(ctx context.Context, recordID int64, isbn string) bool
}

type Service struct {
	finder EditionFinder
	books  BookCreator
	isbns  ISBNSaver
	log    *zap.Logger
}

func NewService(finder EditionFinder, books BookCreator, isbns ISBNSaver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{finder: finder, books: books, isbns: isbns, log: log.Named("ingest")}
}

// Import creates one book per ISBN. Duplicates within the batch are imported
// once; a failure on one ISBN does not stop the others.
func (s *Service) Import(ctx context.Context, isbns []string, status string) []Result {
	results := make([]Result, 0, len(isbns))
	seen := make(map[string]bool, len(isbns))
	for _, raw := range isbns {
		normalized, _ := isbn.NormalizeAndValidate(raw)
		if normalized != "" && seen[normalized] {
			continue
		}
		seen[normalized] = true

		res, err := s.importOne(ctx, raw, status)
		if err != nil {
			res.Error = err.Error()
			s.log.Warn("isbn import failed", zap.String("isbn", raw), zap.Error(err))
		}
		results = append(results, res)
	}
	return results
}

func (s *Service) importOne(ctx context.Context, raw, status string) (Result, error) {
	normalized, ok := isbn.NormalizeAndValidate(raw)
	res := Result{ISBN: normalized}
	if !ok {
		res.ISBN = raw
		return res, ErrInvalidISBN
	}

	ed, err := s.finder.LookupISBN(ctx, normalized)
	if errors.Is(err, openlibrary.ErrNotFound) {
		return res, ErrNoEdition
	}
	if err != nil {
		return res, fmt.Errorf("lookup: %w", err)
	}

	title := ed.Title
	if ed.Subtitle != "" {
		title += ": " + ed.Subtitle
	}
	if title == "" {
		title = "ISBN " + normalized
	}
	b, err := s.books.Create(ctx, book.Input{
		Title:      truncate(title, 255),
		Status:     status,
		Publishers: ed.PublisherNames(),
		Authors:    ed.AuthorNames(),
	})
	if err != nil {
		return res, fmt.Errorf("create book: %w", err)
	}
	res.BookID, res.Title = b.ID, b.Title

	if !s.isbns.Save(ctx, b.ID, normalized) {
		return res, ErrISBNNotSaved
	}
	s.log.Info("imported book", zap.Int64("book_id", b.ID), zap.String("isbn", normalized))
	return res, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
