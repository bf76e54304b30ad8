package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepo struct {
	db      DB
	timeout time.Duration
}

func NewPostgresRepo(db DB, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const sql = `
		INSERT INTO books (title, content, excerpt, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(timeoutCtx, sql, b.Title, b.Content, b.Excerpt, b.Status).
			Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return err
		}
		return replaceTerms(timeoutCtx, tx, b)
	})
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, content, excerpt, status, created_at, updated_at
		FROM books
		WHERE id = $1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}

	books := []Book{b}
	if err := r.attachTerms(timeoutCtx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const sql = `
		UPDATE books SET
			title = $1,
			content = $2,
			excerpt = $3,
			status = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(timeoutCtx, sql, b.Title, b.Content, b.Excerpt, b.Status, b.ID).
			Scan(&b.CreatedAt, &b.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return replaceTerms(timeoutCtx, tx, b)
	})
}

// Delete removes the book; its terms go with it through ON DELETE CASCADE.
func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Status != "" {
		clauses = append(clauses, fmt.Sprintf("b.status = $%d", argn))
		args = append(args, q.Status)
		argn++
	}

	if q.Publisher != "" {
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_terms t WHERE t.book_id = b.id AND t.taxonomy = '%s' AND t.name = $%d)",
			TaxonomyPublisher, argn))
		args = append(args, q.Publisher)
		argn++
	}

	if q.Author != "" {
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_terms t WHERE t.book_id = b.id AND t.taxonomy = '%s' AND t.name = $%d)",
			TaxonomyAuthors, argn))
		args = append(args, q.Author)
		argn++
	}

	if q.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(b.title ILIKE $%d OR b.excerpt ILIKE $%d)", argn, argn))
		args = append(args, "%"+q.Search+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books b "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT b.id, b.title, b.content, b.excerpt, b.status, b.created_at, b.updated_at
		FROM books b
		%s
		ORDER BY b.id DESC
		LIMIT $%d OFFSET $%d`, where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	rows, err := r.db.Query(timeoutCtx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachTerms(timeoutCtx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepo) Titles(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT id, title FROM books WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		out[id] = title
	}
	return out, rows.Err()
}

func (r *PostgresRepo) attachTerms(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
		index[books[i].ID] = i
		books[i].Publishers = []string{}
		books[i].Authors = []string{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT book_id, taxonomy, name
		FROM book_terms
		WHERE book_id = ANY($1)
		ORDER BY name`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int64
		var taxonomy, name string
		if err := rows.Scan(&bookID, &taxonomy, &name); err != nil {
			return err
		}
		b := &books[index[bookID]]
		switch taxonomy {
		case TaxonomyPublisher:
			b.Publishers = append(b.Publishers, name)
		case TaxonomyAuthors:
			b.Authors = append(b.Authors, name)
		}
	}
	return rows.Err()
}

func replaceTerms(ctx context.Context, tx pgx.Tx, b *Book) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_terms WHERE book_id = $1`, b.ID); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	const insert = `INSERT INTO book_terms (book_id, taxonomy, name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	for _, name := range b.Publishers {
		batch.Queue(insert, b.ID, TaxonomyPublisher, name)
	}
	for _, name := range b.Authors {
		batch.Queue(insert, b.ID, TaxonomyAuthors, name)
	}
	if batch.Len() == 0 {
		return nil
	}
	return tx.SendBatch(ctx, batch).Close()
}
