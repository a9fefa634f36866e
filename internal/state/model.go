package state

//
// model.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "time"

// Account is one stored login; DeviceID is the default device used by
// commands when --device is not given.
type Account struct {
	ID        int64     `db:"id"`
	Server    string    `db:"server"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	DeviceID  string    `db:"device_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Cursor kinds; one cursor is kept per account+device+kind.
const (
	CursorSubscriptions = "subscriptions"
	CursorEpisodes      = "episodes"
)

// NoCursor mean no synchronization happened yet; server operations
// treat it as "full history".
const NoCursor int64 = -1

type subscriptionRow struct {
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}
