// Package lookup validates a free-form ISBN and optionally resolves it
// against Open Library.
package lookup

import (
	"context"
	"errors"

	"bookmanager/internal/isbn"
	"bookmanager/internal/platform/openlibrary"
)

// ErrUnavailable is returned when a lookup was asked for but no catalogue is configured.
var ErrUnavailable = errors.New("isbn lookup is not configured")

type EditionFinder interface {
	LookupISBN(ctx context.Context, isbn string) (openlibrary.Edition, error)
}

// Result describes one checked ISBN.
type Result struct {
	Input      string               `json:"input"`
	Normalized string               `json:"normalized"`
	Valid      bool                 `json:"valid"`
	Kind       string               `json:"kind"`
	Found      *bool                `json:"found,omitempty"`
	Edition    *openlibrary.Edition `json:"edition,omitempty"`
}

type Service struct {
	finder EditionFinder
}

// NewService accepts a nil finder; Check then only validates.
func NewService(finder EditionFinder) *Service {
	return &Service{finder: finder}
}

// Check validates raw and, when resolve is set and raw is valid, fetches the edition.
func (s *Service) Check(ctx context.Context, raw string, resolve bool) (Result, error) {
	normalized, valid := isbn.NormalizeAndValidate(raw)
	res := Result{
		Input:      raw,
		Normalized: normalized,
		Valid:      valid,
		Kind:       isbn.KindOf(normalized).String(),
	}
	if !resolve || !valid {
		return res, nil
	}
	if s.finder == nil {
		return res, ErrUnavailable
	}

	ed, err := s.finder.LookupISBN(ctx, normalized)
	found := err == nil
	switch {
	case errors.Is(err, openlibrary.ErrNotFound):
	case err != nil:
		return res, err
	default:
		res.Edition = &ed
	}
	res.Found = &found
	return res, nil
}
