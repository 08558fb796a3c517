package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/cleanup"
)

// Migrate applies pending goose migrations from dir.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("opening migrations connection: %w", err)
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// NewPool opens the shared pool and registers its closing as a cleanup job.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}
