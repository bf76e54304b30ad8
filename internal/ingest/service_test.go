package ingest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookmanager/internal/book"
	"bookmanager/internal/platform/openlibrary"
)

type mockFinder struct{ mock.Mock }

func (m *mockFinder) LookupISBN(ctx context.Context, isbn string) (openlibrary.Edition, error) {
	args := m.Called(ctx, isbn)
	return args.Get(0).(openlibrary.Edition), args.Error(1)
}

type mockBooks struct{ mock.Mock }

func (m *mockBooks) Create(ctx context.Context, in book.Input) (book.Book, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(book.Book), args.Error(1)
}

type mockISBNs struct{ mock.Mock }

func (m *mockISBNs) Save(ctx context.Context, recordID int64, isbn string) bool {
	return m.Called(ctx, recordID, isbn).Bool(0)
}

func edition() openlibrary.Edition {
	return openlibrary.Edition{
		Title:      "Reliability Engineering",
		Subtitle:   "Second Edition",
		Publishers: []openlibrary.Publisher{{Name: "Plenum"}},
		Authors:    []openlibrary.Author{{Name: "A. Author"}},
	}
}

func TestService_Import(t *testing.T) {
	finder, books, isbns := new(mockFinder), new(mockBooks), new(mockISBNs)
	finder.On("LookupISBN", mock.Anything, "0306406152").Return(edition(), nil).Once()
	books.On("Create", mock.Anything, book.Input{
		Title:      "Reliability Engineering: Second Edition",
		Status:     book.StatusPublish,
		Publishers: []string{"Plenum"},
		Authors:    []string{"A. Author"},
	}).Return(book.Book{ID: 9, Title: "Reliability Engineering: Second Edition"}, nil).Once()
	isbns.On("Save", mock.Anything, int64(9), "0306406152").Return(true).Once()

	results := NewService(finder, books, isbns, nil).Import(context.Background(),
		[]string{"0-306-40615-2", "0306406152"}, book.StatusPublish)

	require.Len(t, results, 1)
	assert.Equal(t, Result{ISBN: "0306406152", BookID: 9, Title: "Reliability Engineering: Second Edition"}, results[0])
	finder.AssertExpectations(t)
	books.AssertExpectations(t)
	isbns.AssertExpectations(t)
}

func TestService_Import_PartialFailures(t *testing.T) {
	finder, books, isbns := new(mockFinder), new(mockBooks), new(mockISBNs)
	finder.On("LookupISBN", mock.Anything, "9780306406157").Return(openlibrary.Edition{}, openlibrary.ErrNotFound)
	finder.On("LookupISBN", mock.Anything, "080442957X").Return(openlibrary.Edition{}, errors.New("503"))
	finder.On("LookupISBN", mock.Anything, "0306406152").Return(openlibrary.Edition{}, nil)
	books.On("Create", mock.Anything, mock.MatchedBy(func(in book.Input) bool {
		return in.Title == "ISBN 0306406152"
	})).Return(book.Book{ID: 4}, nil)
	isbns.On("Save", mock.Anything, int64(4), "0306406152").Return(false)

	results := NewService(finder, books, isbns, nil).Import(context.Background(),
		[]string{"12345", "9780306406157", "080442957X", "0306406152"}, "")

	require.Len(t, results, 4)
	assert.Equal(t, ErrInvalidISBN.Error(), results[0].Error)
	assert.Equal(t, ErrNoEdition.Error(), results[1].Error)
	assert.Contains(t, results[2].Error, "lookup")
	assert.Equal(t, ErrISBNNotSaved.Error(), results[3].Error)
	assert.Equal(t, int64(4), results[3].BookID)
}

func TestHTTPHandler_Import(t *testing.T) {
	t.Run("rejects bad checksum before any lookup", func(t *testing.T) {
		finder := new(mockFinder)
		h := NewHTTPHandler(NewService(finder, new(mockBooks), new(mockISBNs), nil))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books/import", strings.NewReader(`{"isbns":["0306406153"]}`))
		h.Import(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "valid ISBN-10 or ISBN-13")
		finder.AssertNotCalled(t, "LookupISBN", mock.Anything, mock.Anything)
	})

	t.Run("empty list", func(t *testing.T) {
		h := NewHTTPHandler(NewService(new(mockFinder), new(mockBooks), new(mockISBNs), nil))

		w := httptest.NewRecorder()
		h.Import(w, httptest.NewRequest(http.MethodPost, "/books/import", bytes.NewBufferString(`{"isbns":[]}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports counts", func(t *testing.T) {
		finder, books, isbns := new(mockFinder), new(mockBooks), new(mockISBNs)
		finder.On("LookupISBN", mock.Anything, "0306406152").Return(edition(), nil)
		books.On("Create", mock.Anything, mock.Anything).Return(book.Book{ID: 1}, nil)
		isbns.On("Save", mock.Anything, int64(1), "0306406152").Return(true)
		h := NewHTTPHandler(NewService(finder, books, isbns, nil))

		w := httptest.NewRecorder()
		h.Import(w, httptest.NewRequest(http.MethodPost, "/books/import", strings.NewReader(`{"isbns":["0306406152"]}`)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"imported":1`)
		assert.Contains(t, w.Body.String(), `"failed":0`)
	})
}
