package state

//
// subscriptions.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/common"
)

// ListSubscriptions return the cached subscription urls for a device,
// ordered by url.
func (s *Store) ListSubscriptions(ctx context.Context, accountID int64, deviceID string) ([]string, error) {
	rows := []subscriptionRow{}

	err := s.db.SelectContext(ctx, &rows,
		"SELECT url, created_at FROM subscriptions WHERE account_id=? AND device_id=? ORDER BY url",
		accountID, deviceID)
	if err != nil {
		return nil, aerr.Wrapf(err, "select subscriptions failed").
			WithMeta(common.LogKeyDeviceID, deviceID)
	}

	urls := make([]string, len(rows))
	for i, r := range rows {
		urls[i] = r.URL
	}

	return urls, nil
}

// ReplaceSubscriptions overwrite the cached list with urls.
func (s *Store) ReplaceSubscriptions(ctx context.Context, accountID int64, deviceID string, urls []string) error {
	log.Ctx(ctx).Debug().
		Str(common.LogKeyDeviceID, deviceID).
		Int("count", len(urls)).
		Msg("replace subscriptions")

	return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"DELETE FROM subscriptions WHERE account_id=? AND device_id=?",
			accountID, deviceID)
		if err != nil {
			return aerr.Wrapf(err, "delete subscriptions failed")
		}

		return insertSubscriptions(ctx, tx, accountID, deviceID, urls)
	})
}

// ApplyChanges add and remove urls in the cached list; called after a
// delta is accepted by the server or received from it.
func (s *Store) ApplyChanges(ctx context.Context, accountID int64, deviceID string, add, remove []string) error {
	log.Ctx(ctx).Debug().
		Str(common.LogKeyDeviceID, deviceID).
		Int("add", len(add)).
		Int("remove", len(remove)).
		Msg("apply subscription changes")

	return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, url := range remove {
			_, err := tx.ExecContext(ctx,
				"DELETE FROM subscriptions WHERE account_id=? AND device_id=? AND url=?",
				accountID, deviceID, url)
			if err != nil {
				return aerr.Wrapf(err, "delete subscription failed").WithMeta("url", url)
			}
		}

		return insertSubscriptions(ctx, tx, accountID, deviceID, add)
	})
}

// RenameURL rewrite one cached url after the server sanitized it; empty
// newurl drops the subscription.
func (s *Store) RenameURL(ctx context.Context, accountID int64, deviceID, oldurl, newurl string) error {
	log.Ctx(ctx).Debug().Msgf("rename subscription %q -> %q", oldurl, newurl)

	if newurl == "" {
		_, err := s.db.ExecContext(ctx,
			"DELETE FROM subscriptions WHERE account_id=? AND device_id=? AND url=?",
			accountID, deviceID, oldurl)
		if err != nil {
			return aerr.Wrapf(err, "delete subscription failed").WithMeta("url", oldurl)
		}

		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE OR REPLACE subscriptions SET url=?
		WHERE account_id=? AND device_id=? AND url=?`,
		newurl, accountID, deviceID, oldurl)
	if err != nil {
		return aerr.Wrapf(err, "rename subscription failed").WithMeta("url", oldurl)
	}

	return nil
}

func insertSubscriptions(ctx context.Context, tx *sqlx.Tx, accountID int64, deviceID string, urls []string) error {
	now := time.Now().UTC()

	for _, url := range urls {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subscriptions (account_id, device_id, url, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (account_id, device_id, url) DO NOTHING`,
			accountID, deviceID, url, now)
		if err != nil {
			return aerr.Wrapf(err, "insert subscription failed").WithMeta("url", url)
		}
	}

	return nil
}
