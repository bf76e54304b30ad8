package metabox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookmanager/internal/bookinfo"
	"bookmanager/internal/testutil"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  0-306-40615-2 ", "0306406152"},
		{"ISBN: 978 0 306 40615 7", "ISBN9780306406157"},
		{"<b>080442957X</b>", "b080442957Xb"},
		{"٣٤٥", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), "sanitize(%q)", tt.in)
	}
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("valid isbn is stored normalized", func(t *testing.T) {
		store := new(mockStore)
		store.On("Save", mock.Anything, int64(3), "9780306406157").Return(true)

		out := NewService(store, nil).Save(ctx, 3, "ISBN 978-0-306-40615-7")

		assert.Equal(t, OutcomeSaved, out)
		store.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := new(mockStore)
		store.On("Save", mock.Anything, int64(3), "0306406152").Return(false)

		assert.Equal(t, OutcomeFailed, NewService(store, nil).Save(ctx, 3, "0306406152"))
	})

	t.Run("cleared field deletes", func(t *testing.T) {
		for _, raw := range []string{"", "   ", " - - "} {
			store := new(mockStore)
			store.On("Delete", mock.Anything, int64(3)).Return(true).Once()

			assert.Equal(t, OutcomeDeleted, NewService(store, nil).Save(ctx, 3, raw))
			store.AssertExpectations(t)
		}
	})

	t.Run("invalid value is ignored", func(t *testing.T) {
		for _, raw := range []string{"0306406153", "12345", "080442957x", "abc"} {
			store := new(mockStore)

			assert.Equal(t, OutcomeIgnored, NewService(store, nil).Save(ctx, 3, raw), raw)
			store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		}
	})
}

func TestService_SQLiteFlow(t *testing.T) {
	repo := bookinfo.NewSQLRepo(testutil.SQLiteDB(t), bookinfo.DialectSQLite, time.Second)
	ctx := context.Background()
	require.NoError(t, repo.CreateTable(ctx))

	svc := NewService(bookinfo.NewService(repo, nil), nil)

	assert.Equal(t, OutcomeSaved, svc.Save(ctx, 8, "0-306-40615-2"))
	assert.Equal(t, "0306406152", svc.Current(ctx, 8))

	assert.Equal(t, OutcomeIgnored, svc.Save(ctx, 8, "0-306-40615-3"))
	assert.Equal(t, "0306406152", svc.Current(ctx, 8))

	assert.Equal(t, OutcomeSaved, svc.Save(ctx, 8, "978-0-306-40615-7"))
	assert.Equal(t, "9780306406157", svc.Current(ctx, 8))

	assert.Equal(t, OutcomeDeleted, svc.Save(ctx, 8, ""))
	assert.Equal(t, "", svc.Current(ctx, 8))
}
