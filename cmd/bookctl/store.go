package main

import (
	"context"
	"fmt"

	"bookmanager/internal/bookinfo"
	"bookmanager/internal/config"
	"bookmanager/internal/database"
)

type isbnStore interface {
	bookinfo.Repository
	bookinfo.SchemaCreator
}

// openStore connects to the configured database and returns the ISBN
// repository with a function that releases the connection.
func (c *cli) openStore(ctx context.Context) (isbnStore, func(), error) {
	switch c.cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, c.cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		return bookinfo.NewPostgresRepo(pool, c.cfg.DBTimeout), pool.Close, nil
	case config.DriverSQLite, config.DriverMySQL:
		db, err := database.OpenSQL(ctx, c.cfg.DBDriver, c.cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		dialect := bookinfo.DialectSQLite
		if c.cfg.DBDriver == config.DriverMySQL {
			dialect = bookinfo.DialectMySQL
		}
		return bookinfo.NewSQLRepo(db, dialect, c.cfg.DBTimeout), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", c.cfg.DBDriver)
	}
}

func (c *cli) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}
