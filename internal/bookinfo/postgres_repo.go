package bookinfo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepo struct {
	db      DBTX
	timeout time.Duration
}

func NewPostgresRepo(db DBTX, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// CreateTable bootstraps a standalone books_info table. Unlike the goose
// migration it carries no foreign key, so it works without a books table.
func (r *PostgresRepo) CreateTable(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS books_info (
			id        BIGSERIAL PRIMARY KEY,
			record_id BIGINT NOT NULL UNIQUE,
			isbn      VARCHAR(32) NOT NULL
		)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, ddl); err != nil {
		return fmt.Errorf("create %s: %w", TableName, err)
	}
	return nil
}

func (r *PostgresRepo) FindByRecordID(ctx context.Context, recordID int64) (Record, error) {
	const query = `
		SELECT id, record_id, isbn
		FROM books_info
		WHERE record_id = $1
		LIMIT 1`

	var rec Record
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, recordID).Scan(&rec.ID, &rec.RecordID, &rec.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, recordID int64, isbn string) error {
	const sql = `INSERT INTO books_info (record_id, isbn) VALUES ($1, $2)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql, recordID, isbn)
	return err
}

func (r *PostgresRepo) Update(ctx context.Context, recordID int64, isbn string) error {
	const sql = `UPDATE books_info SET isbn = $1 WHERE record_id = $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, isbn, recordID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteByRecordID(ctx context.Context, recordID int64) (bool, error) {
	const sql = `DELETE FROM books_info WHERE record_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, recordID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Record, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM books_info`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
		SELECT id, record_id, isbn
		FROM books_info
		ORDER BY id
		LIMIT $1 OFFSET $2`

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.RecordID, &rec.ISBN); err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}
