package bookinfo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager/internal/testutil"
)

func newSQLiteRepo(t *testing.T) *SQLRepo {
	t.Helper()
	repo := NewSQLRepo(testutil.SQLiteDB(t), DialectSQLite, 2*time.Second)
	require.NoError(t, repo.CreateTable(context.Background()))
	return repo
}

func TestSQLRepo_CreateTable_Idempotent(t *testing.T) {
	repo := newSQLiteRepo(t)
	assert.NoError(t, repo.CreateTable(context.Background()))
}

func TestSQLRepo_CreateTable_UnknownDialect(t *testing.T) {
	repo := NewSQLRepo(nil, Dialect("oracle"), time.Second)
	assert.Error(t, repo.CreateTable(context.Background()))
}

func TestSQLRepo_FindByRecordID_NotFound(t *testing.T) {
	repo := newSQLiteRepo(t)

	_, err := repo.FindByRecordID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLRepo_InsertUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.Insert(ctx, 5, "0306406152"))
	rec, err := repo.FindByRecordID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), rec.RecordID)
	assert.Equal(t, "0306406152", rec.ISBN)
	assert.NotZero(t, rec.ID)

	require.NoError(t, repo.Update(ctx, 5, "9780306406157"))
	updated, err := repo.FindByRecordID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, "9780306406157", updated.ISBN)

	deleted, err := repo.DeleteByRecordID(ctx, 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByRecordID(ctx, 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSQLRepo_Update_MissingRowIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	err := repo.Update(ctx, 77, "0306406152")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByRecordID(ctx, 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLRepo_Update_SameValueSucceeds(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.Insert(ctx, 8, "0306406152"))
	assert.NoError(t, repo.Update(ctx, 8, "0306406152"))
}

func TestSQLRepo_Insert_RecordIDIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.Insert(ctx, 5, "0306406152"))
	assert.Error(t, repo.Insert(ctx, 5, "9780306406157"))
}

func TestSQLRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, repo.Insert(ctx, i*10, "0306406152"))
	}

	page, total, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, int64(20), page[0].RecordID)
	assert.Equal(t, int64(30), page[1].RecordID)
}
