package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

var errNameRequired = errors.New("name is required for 'create' command")

func run(db *sql.DB, command, dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errNameRequired
		}
		return goose.Create(nil, dir, name, "sql")
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
}
