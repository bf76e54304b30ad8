package book

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	isbns ISBNRemover
	log   *zap.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, isbns ISBNRemover, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, isbns: isbns, log: log.Named("book")}
}

// List returns a page of books matching the query and the total count.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// Get returns a book by id.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	if id <= 0 {
		return Book{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Exists reports whether id names a book.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Titles maps book ids to titles; unknown ids are absent from the result.
func (s *Service) Titles(ctx context.Context, ids []int64) (map[int64]string, error) {
	return s.repo.Titles(ctx, ids)
}

func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	b := fromInput(in)
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Book, error) {
	if id <= 0 {
		return Book{}, ErrNotFound
	}
	b := fromInput(in)
	b.ID = id
	if err := s.repo.Update(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book and the ISBN attached to it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.isbns != nil && s.isbns.Delete(ctx, id) {
		s.log.Debug("removed isbn of deleted book", zap.Int64("book_id", id))
	}
	return nil
}

func fromInput(in Input) Book {
	status := in.Status
	if status == "" {
		status = StatusDraft
	}
	return Book{
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		Excerpt:    strings.TrimSpace(in.Excerpt),
		Status:     status,
		Publishers: cleanTerms(in.Publishers),
		Authors:    cleanTerms(in.Authors),
	}
}

// cleanTerms trims names and drops blanks and case-insensitive duplicates,
// keeping the first spelling.
func cleanTerms(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
