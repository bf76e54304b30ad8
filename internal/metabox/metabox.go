// Package metabox implements the ISBN editor form attached to a book.
package metabox

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"bookmanager/internal/isbn"
	"bookmanager/internal/metrics"
)

// Form field names.
const (
	FieldISBN     = "book_isbn"
	FieldNonce    = "book_isbn_nonce"
	FieldAutosave = "autosave"
)

// Outcome is what a form submission did to the stored ISBN.
type Outcome string

const (
	OutcomeSaved   Outcome = "saved"
	OutcomeDeleted Outcome = "deleted"
	OutcomeIgnored Outcome = "ignored"
	OutcomeFailed  Outcome = "failed"
)

// ISBNStore is the slice of the ISBN repository the form needs.
type ISBNStore interface {
	Save(ctx context.Context, recordID int64, isbn string) bool
	Delete(ctx context.Context, recordID int64) bool
	Get(ctx context.Context, recordID int64) string
}

// NonceAction is the action a form nonce is bound to.
func NonceAction(recordID int64) string {
	return fmt.Sprintf("save_book_isbn:%d", recordID)
}

type Service struct {
	store ISBNStore
	log   *zap.Logger
}

func NewService(store ISBNStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log.Named("metabox")}
}

// Current returns the ISBN to prefill the form with.
func (s *Service) Current(ctx context.Context, recordID int64) string {
	return s.store.Get(ctx, recordID)
}

// Save applies a submitted field value. An empty value clears the ISBN, an
// invalid one leaves the stored value untouched.
func (s *Service) Save(ctx context.Context, recordID int64, raw string) Outcome {
	out := s.save(ctx, recordID, raw)
	metrics.IncFormOutcome(string(out))
	return out
}

func (s *Service) save(ctx context.Context, recordID int64, raw string) Outcome {
	value := sanitize(raw)
	if value == "" {
		s.store.Delete(ctx, recordID)
		return OutcomeDeleted
	}

	normalized, ok := isbn.NormalizeAndValidate(value)
	if !ok {
		s.log.Debug("invalid isbn ignored", zap.Int64("record_id", recordID), zap.String("value", value))
		return OutcomeIgnored
	}
	if !s.store.Save(ctx, recordID, normalized) {
		return OutcomeFailed
	}
	return OutcomeSaved
}

// sanitize trims the value and keeps ASCII letters and digits only.
func sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, strings.TrimSpace(raw))
}
