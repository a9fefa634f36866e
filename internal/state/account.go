package state

//
// account.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/common"
)

// SaveAccount insert or update the login for (server, username).
func (s *Store) SaveAccount(ctx context.Context, account *Account) error {
	logger := log.Ctx(ctx)
	logger.Debug().
		Str(common.LogKeyServer, account.Server).
		Str(common.LogKeyUserName, account.Username).
		Msg("save account")

	if account.Username == "" {
		return common.ErrEmptyUsername
	}

	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (server, username, password, device_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (server, username) DO UPDATE
			SET password=excluded.password,
				device_id=excluded.device_id,
				updated_at=excluded.updated_at`,
		account.Server, account.Username, account.Password, account.DeviceID, now, now)
	if err != nil {
		return aerr.Wrapf(err, "save account failed").
			WithMeta(common.LogKeyUserName, account.Username)
	}

	// LastInsertId is meaningless when the upsert took the update branch
	err = s.db.GetContext(ctx, &account.ID,
		"SELECT id FROM accounts WHERE server=? AND username=?",
		account.Server, account.Username)
	if err != nil {
		return aerr.Wrapf(err, "select account id failed").
			WithMeta(common.LogKeyUserName, account.Username)
	}

	return nil
}

// GetAccount return the login for server; when username is empty any
// account stored for that server matches. common.ErrNoData when none.
func (s *Store) GetAccount(ctx context.Context, server, username string) (*Account, error) {
	account := Account{}

	query := "SELECT id, server, username, password, device_id, created_at, updated_at " +
		"FROM accounts WHERE server=?"
	args := []any{server}

	if username != "" {
		query += " AND username=?"
		args = append(args, username)
	}

	err := s.db.GetContext(ctx, &account, query+" ORDER BY updated_at DESC", args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoData
	} else if err != nil {
		return nil, aerr.Wrapf(err, "select account failed").WithMeta(common.LogKeyServer, server)
	}

	return &account, nil
}

// SetDefaultDevice remember deviceID as the account's default.
func (s *Store) SetDefaultDevice(ctx context.Context, accountID int64, deviceID string) error {
	log.Ctx(ctx).Debug().Str(common.LogKeyDeviceID, deviceID).Msg("set default device")

	_, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET device_id=?, updated_at=? WHERE id=?",
		deviceID, time.Now().UTC(), accountID)
	if err != nil {
		return aerr.Wrapf(err, "update account failed").WithMeta("account_id", accountID)
	}

	return nil
}

// DeleteAccount remove the login and all its cursors and cached
// subscriptions.
func (s *Store) DeleteAccount(ctx context.Context, accountID int64) error {
	log.Ctx(ctx).Debug().Int64("account_id", accountID).Msg("delete account")

	_, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE id=?", accountID)
	if err != nil {
		return aerr.Wrapf(err, "delete account failed").WithMeta("account_id", accountID)
	}

	return nil
}
