package state

//
// state.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
)

//go:embed "migrations/*.sql"
var embedMigrations embed.FS

// Store keep the client's local state: accounts, per-device
// synchronization cursors and the last known subscription list.
// Backed by one sqlite database file.
type Store struct {
	db *sqlx.DB
}

func Open(ctx context.Context, connstr string) (*Store, error) {
	connstr, err := prepareSqliteConnstr(connstr)
	if err != nil {
		return nil, err
	}

	if err := ensureDatabaseDir(connstr); err != nil {
		return nil, err
	}

	logger := log.Ctx(ctx)
	logger.Debug().Msgf("opening state database %q", connstr)

	db, err := sqlx.Open("sqlite3", connstr)
	if err != nil {
		return nil, aerr.Wrapf(err, "open state database failed").
			WithTag(aerr.InternalError).WithMeta("connstr", connstr)
	}

	db.SetConnMaxIdleTime(30 * time.Second) //nolint:mnd
	db.SetMaxIdleConns(1)
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA temp_store = MEMORY;"); err != nil {
		return nil, aerr.ErrState.WithError(err).WithMsg("execute startup script failed")
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, aerr.Wrapf(err, "ping state database failed").WithTag(aerr.InternalError)
	}

	// duplicate registration is fine when several stores are opened in
	// one process
	_ = prometheus.DefaultRegisterer.Register(collectors.NewDBStatsCollector(db.DB, "state"))

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Shutdown close the store. Called by samber/do.
func (s *Store) Shutdown(ctx context.Context) error {
	return s.Close(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("run optimize on close failed")
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close state database error: %w", err)
	}

	log.Ctx(ctx).Debug().Msg("state database closed")

	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	logger := log.Ctx(ctx)

	migdir, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Errorf("prepare migration fs failed: %w", err))
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db.DB, migdir)
	if err != nil {
		panic(fmt.Errorf("create goose provider failed: %w", err))
	}

	for {
		res, err := provider.UpByOne(ctx)
		if res != nil {
			logger.Debug().Msgf("migration: %s", res)
		}

		if errors.Is(err, goose.ErrNoNextVersion) {
			break
		} else if err != nil {
			return aerr.ErrState.WithError(err).WithMsg("migrate state database failed")
		}
	}

	ver, err := provider.GetDBVersion(ctx)
	if err != nil {
		return aerr.ErrState.WithError(err).WithMsg("failed to check state database version")
	}

	logger.Debug().Msgf("state database version: %d", ver)

	return nil
}

// Maintenance compact the database file.
func (s *Store) Maintenance(ctx context.Context) error {
	for _, sql := range []string{"VACUUM;", "ANALYZE;", "PRAGMA optimize;"} {
		if _, err := s.db.ExecContext(ctx, sql); err != nil {
			return aerr.ErrState.WithError(err).WithMsg("execute maintenance script failed").
				WithMeta("sql", sql)
		}
	}

	return nil
}

func (s *Store) inTransaction(ctx context.Context, fun func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return aerr.ErrState.WithError(err).WithMsg("begin tx failed")
	}

	if err := fun(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return aerr.ErrState.WithError(errors.Join(err, rerr)).
				WithMsg("execute func in trans and rollback error")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return aerr.ErrState.WithError(err).WithMsg("commit tx failed")
	}

	return nil
}

//------------------------------------------------------------------------------

func prepareSqliteConnstr(connstr string) (string, error) {
	if connstr == "" {
		return "", aerr.ErrInvalidConf.WithUserMsg("invalid (empty) state database path")
	}

	if connstr == ":memory:" {
		return ":memory:?_fk=ON", nil
	}

	parsed, err := url.Parse(connstr)
	if err != nil {
		return "", aerr.ErrInvalidConf.WithError(err).WithUserMsg("failed to parse state database path")
	}

	if parsed.Path == "" {
		return "", aerr.ErrInvalidConf.WithUserMsg("invalid state database path")
	}

	query := parsed.Query()
	if !query.Has("_fk") && !query.Has("__foreign_keys") {
		query.Set("_fk", "ON")
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// ensureDatabaseDir create the directory the database file lives in;
// sqlite does not create parent directories on its own.
func ensureDatabaseDir(connstr string) error {
	if strings.HasPrefix(connstr, ":memory:") {
		return nil
	}

	path := connstr
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return aerr.ErrState.WithError(err).WithMsg("create state database directory failed").
			WithMeta("dir", dir)
	}

	return nil
}
