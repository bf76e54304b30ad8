package bookinfo

import (
	"context"
	"errors"

	"bookmanager/internal/metrics"

	"go.uber.org/zap"
)

// Service exposes the ISBN repository to form and display handlers. Failures
// are logged and reported as booleans; callers never see storage errors.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates a new ISBN service. A nil logger discards output.
func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log.Named("bookinfo")}
}

// Save stores isbn for recordID, updating the existing row if there is one.
func (s *Service) Save(ctx context.Context, recordID int64, isbn string) bool {
	if err := checkInput(recordID, isbn); err != nil {
		s.log.Debug("isbn save rejected", zap.Int64("record_id", recordID), zap.Error(err))
		metrics.IncBookinfoOp("save", "rejected")
		return false
	}

	_, err := s.repo.FindByRecordID(ctx, recordID)
	switch {
	case err == nil:
		err = s.repo.Update(ctx, recordID, isbn)
		if errors.Is(err, ErrNotFound) {
			// row went away between the lookup and the update
			err = s.repo.Insert(ctx, recordID, isbn)
		}
	case errors.Is(err, ErrNotFound):
		err = s.repo.Insert(ctx, recordID, isbn)
	}
	if err != nil {
		s.log.Error("isbn save failed", zap.Int64("record_id", recordID), zap.Error(err))
		metrics.IncBookinfoOp("save", "error")
		return false
	}

	metrics.IncBookinfoOp("save", "ok")
	return true
}

// Delete removes the ISBN of recordID and reports whether a row was deleted.
func (s *Service) Delete(ctx context.Context, recordID int64) bool {
	if recordID <= 0 {
		metrics.IncBookinfoOp("delete", "rejected")
		return false
	}

	deleted, err := s.repo.DeleteByRecordID(ctx, recordID)
	if err != nil {
		s.log.Error("isbn delete failed", zap.Int64("record_id", recordID), zap.Error(err))
		metrics.IncBookinfoOp("delete", "error")
		return false
	}

	if deleted {
		metrics.IncBookinfoOp("delete", "ok")
	} else {
		metrics.IncBookinfoOp("delete", "noop")
	}
	return deleted
}

// Get returns the stored ISBN, or "" when there is none.
func (s *Service) Get(ctx context.Context, recordID int64) string {
	if recordID <= 0 {
		return ""
	}

	rec, err := s.repo.FindByRecordID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("isbn lookup failed", zap.Int64("record_id", recordID), zap.Error(err))
			metrics.IncBookinfoOp("get", "error")
		}
		return ""
	}
	metrics.IncBookinfoOp("get", "ok")
	return rec.ISBN
}

// List returns a page of rows ordered by id together with the total row count.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, int, error) {
	return s.repo.List(ctx, limit, offset)
}
