package metabox

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, recordID int64, isbn string) bool {
	return m.Called(ctx, recordID, isbn).Bool(0)
}

func (m *mockStore) Delete(ctx context.Context, recordID int64) bool {
	return m.Called(ctx, recordID).Bool(0)
}

func (m *mockStore) Get(ctx context.Context, recordID int64) string {
	return m.Called(ctx, recordID).String(0)
}

type mockBooks struct {
	mock.Mock
}

func (m *mockBooks) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
