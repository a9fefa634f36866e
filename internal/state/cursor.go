package state

//
// cursor.go
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

// GetCursor return the last timestamp received from the server for
// account+device+kind; NoCursor when no synchronization happened yet.
func (s *Store) GetCursor(ctx context.Context, accountID int64, deviceID, kind string) (int64, error) {
	var value int64

	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM cursors WHERE account_id=? AND device_id=? AND kind=?",
		accountID, deviceID, kind)
	if errors.Is(err, sql.ErrNoRows) {
		return NoCursor, nil
	} else if err != nil {
		return NoCursor, aerr.Wrapf(err, "select cursor failed").
			WithMeta(common.LogKeyDeviceID, deviceID, "kind", kind)
	}

	return value, nil
}

// SetCursor store the timestamp returned by the server. Cursors never
// move backwards; a smaller value is ignored.
func (s *Store) SetCursor(ctx context.Context, accountID int64, deviceID, kind string, value int64) error {
	log.Ctx(ctx).Debug().
		Str(common.LogKeyDeviceID, deviceID).
		Str("kind", kind).
		Int64(common.LogKeyCursor, value).
		Msg("set cursor")

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cursors (account_id, device_id, kind, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (account_id, device_id, kind) DO UPDATE
			SET value=excluded.value, updated_at=excluded.updated_at
			WHERE excluded.value > cursors.value`,
		accountID, deviceID, kind, value, time.Now().UTC())
	if err != nil {
		return aerr.Wrapf(err, "save cursor failed").
			WithMeta(common.LogKeyDeviceID, deviceID, "kind", kind)
	}

	return nil
}
