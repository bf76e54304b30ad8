// Package admin serves the list view over the books_info table.
package admin

import (
	"context"
	"fmt"

	"bookmanager/internal/bookinfo"
)

// MissingTitle is shown for rows whose book no longer exists.
const MissingTitle = "N/A"

// Row is one line of the list view.
type Row struct {
	ID        int64  `json:"ID"`
	RecordID  int64  `json:"record_id"`
	BookTitle string `json:"book_title"`
	ISBN      string `json:"isbn"`
	EditLink  string `json:"edit_link"`
}

type ISBNLister interface {
	List(ctx context.Context, limit, offset int) ([]bookinfo.Record, int, error)
}

type TitleResolver interface {
	Titles(ctx context.Context, ids []int64) (map[int64]string, error)
}

type Service struct {
	isbns  ISBNLister
	titles TitleResolver
}

func NewService(isbns ISBNLister, titles TitleResolver) *Service {
	return &Service{isbns: isbns, titles: titles}
}

// Rows returns one page of the list view and the total number of rows.
func (s *Service) Rows(ctx context.Context, limit, offset int) ([]Row, int, error) {
	records, total, err := s.isbns.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list isbns: %w", err)
	}

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.RecordID)
	}
	titles, err := s.titles.Titles(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve titles: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		title, ok := titles[rec.RecordID]
		if !ok {
			title = MissingTitle
		}
		rows = append(rows, Row{
			ID:        rec.ID,
			RecordID:  rec.RecordID,
			BookTitle: title,
			ISBN:      rec.ISBN,
			EditLink:  EditLink(rec.RecordID),
		})
	}
	return rows, total, nil
}

// EditLink points at the ISBN form of a record.
func EditLink(recordID int64) string {
	return fmt.Sprintf("/books/%d/isbn", recordID)
}
