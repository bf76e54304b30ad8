package bookinfo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Executor is the subset of database/sql shared by *sql.DB, *sql.Conn and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect selects the DDL used by SQLRepo.CreateTable.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// SQLRepo stores books_info rows through database/sql. Both supported dialects
// use "?" placeholders, so only the DDL differs.
type SQLRepo struct {
	db      Executor
	dialect Dialect
	timeout time.Duration
}

func NewSQLRepo(db Executor, dialect Dialect, timeout time.Duration) *SQLRepo {
	return &SQLRepo{db: db, dialect: dialect, timeout: timeout}
}

func (r *SQLRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLRepo) CreateTable(ctx context.Context) error {
	var ddl string
	switch r.dialect {
	case DialectSQLite:
		ddl = `
		CREATE TABLE IF NOT EXISTS books_info (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id INTEGER NOT NULL UNIQUE,
			isbn VARCHAR(32) NOT NULL
		)`
	case DialectMySQL:
		ddl = `
		CREATE TABLE IF NOT EXISTS books_info (
			ID bigint(20) unsigned NOT NULL AUTO_INCREMENT,
			record_id bigint(20) unsigned NOT NULL,
			isbn varchar(32) NOT NULL,
			PRIMARY KEY (ID),
			UNIQUE KEY record_id (record_id)
		) DEFAULT CHARSET=utf8mb4`
	default:
		return fmt.Errorf("create %s: unsupported dialect %q", TableName, r.dialect)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.ExecContext(timeoutCtx, ddl); err != nil {
		return fmt.Errorf("create %s: %w", TableName, err)
	}
	return nil
}

func (r *SQLRepo) FindByRecordID(ctx context.Context, recordID int64) (Record, error) {
	const query = `SELECT ID, record_id, isbn FROM books_info WHERE record_id = ? LIMIT 1`

	var rec Record
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRowContext(timeoutCtx, query, recordID).Scan(&rec.ID, &rec.RecordID, &rec.ISBN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *SQLRepo) Insert(ctx context.Context, recordID int64, isbn string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.ExecContext(timeoutCtx, `INSERT INTO books_info (record_id, isbn) VALUES (?, ?)`, recordID, isbn)
	return err
}

// Update reports ErrNotFound when no row carries recordID. MySQL counts
// unchanged rows as unaffected, so a zero count is rechecked with a lookup.
func (r *SQLRepo) Update(ctx context.Context, recordID int64, isbn string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, `UPDATE books_info SET isbn = ? WHERE record_id = ?`, isbn, recordID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var one int
	err = r.db.QueryRowContext(timeoutCtx, `SELECT 1 FROM books_info WHERE record_id = ?`, recordID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *SQLRepo) DeleteByRecordID(ctx context.Context, recordID int64) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, `DELETE FROM books_info WHERE record_id = ?`, recordID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLRepo) List(ctx context.Context, limit, offset int) ([]Record, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRowContext(timeoutCtx, `SELECT COUNT(*) FROM books_info`).Scan(&total); err != nil {
		return nil, 0, err
	}

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.QueryContext(timeoutCtx2, `SELECT ID, record_id, isbn FROM books_info ORDER BY ID LIMIT ? OFFSET ?`, limit, offset)
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
