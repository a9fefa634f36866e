package state

//
// state_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"gitlab.com/kabes/go-mygpo/internal/assert"
	"gitlab.com/kabes/go-mygpo/internal/common"
)

func TestPrepareSqliteConnstr(t *testing.T) {
	tests := []struct {
		connstr  string
		expected string
		experr   bool
	}{
		{"", "", true},
		{"?abc?_fk=1", "", true},
		{"/abc/abc?_fk=1", "/abc/abc?_fk=1", false},
		{"/abc/abc?_fk=0", "/abc/abc?_fk=0", false},
		{"/abc/abc?__foreign_keys=ON", "/abc/abc?__foreign_keys=ON", false},
		{"/abc/abc", "/abc/abc?_fk=ON", false},
		{"/abc/abc?_abc=123", "/abc/abc?_abc=123&_fk=ON", false},
		{":memory:", ":memory:?_fk=ON", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			res, err := prepareSqliteConnstr(tt.connstr)
			if tt.experr {
				assert.Err(t, err)
			} else {
				assert.NoErr(t, err)
				assert.Equal(t, res, tt.expected)
			}
		})
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	ctx := context.Background()

	// sqlite does not create parent directories; Open must, or the first
	// run with the default path under the user config dir fails
	dbfile := filepath.Join(t.TempDir(), "sub", "dir", "state.sqlite")

	store, err := Open(ctx, dbfile+"?_journal_mode=WAL")
	assert.NoErr(t, err)

	t.Cleanup(func() { _ = store.Close(ctx) })

	_, err = os.Stat(dbfile)
	assert.NoErr(t, err)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()

	store, err := Open(ctx, ":memory:")
	assert.NoErr(t, err)

	t.Cleanup(func() { _ = store.Close(ctx) })

	return store
}

func testAccount(t *testing.T, store *Store) *Account {
	t.Helper()

	account := &Account{
		Server:   "https://gpodder.example.org",
		Username: "user1",
		Password: "secret",
		DeviceID: "dev1",
	}
	assert.NoErr(t, store.SaveAccount(context.Background(), account))
	assert.True(t, account.ID != 0)

	return account
}

func TestAccountRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.GetAccount(ctx, "https://gpodder.example.org", "")
	assert.True(t, errors.Is(err, common.ErrNoData))

	account := testAccount(t, store)

	got, err := store.GetAccount(ctx, "https://gpodder.example.org", "")
	assert.NoErr(t, err)
	assert.Equal(t, got.Username, "user1")
	assert.Equal(t, got.Password, "secret")
	assert.Equal(t, got.DeviceID, "dev1")

	// upsert on the same server+username
	account.Password = "changed"
	assert.NoErr(t, store.SaveAccount(ctx, account))

	got, err = store.GetAccount(ctx, "https://gpodder.example.org", "user1")
	assert.NoErr(t, err)
	assert.Equal(t, got.Password, "changed")
	assert.Equal(t, got.ID, account.ID)
}

func TestSaveAccountRelogin(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	// a fresh login for the same server+username takes the update branch
	// of the upsert and must resolve the existing row id
	relogin := &Account{
		Server:   account.Server,
		Username: account.Username,
		Password: "newpass",
		DeviceID: "dev2",
	}
	assert.NoErr(t, store.SaveAccount(ctx, relogin))
	assert.Equal(t, relogin.ID, account.ID)

	got, err := store.GetAccount(ctx, account.Server, account.Username)
	assert.NoErr(t, err)
	assert.Equal(t, got.ID, account.ID)
	assert.Equal(t, got.Password, "newpass")
}

func TestSaveAccountEmptyUsername(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveAccount(context.Background(), &Account{Server: "https://x"})
	assert.True(t, errors.Is(err, common.ErrEmptyUsername))
}

func TestSetDefaultDevice(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	assert.NoErr(t, store.SetDefaultDevice(ctx, account.ID, "phone-1"))

	got, err := store.GetAccount(ctx, account.Server, account.Username)
	assert.NoErr(t, err)
	assert.Equal(t, got.DeviceID, "phone-1")
}

func TestCursorMonotonic(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	value, err := store.GetCursor(ctx, account.ID, "dev1", CursorSubscriptions)
	assert.NoErr(t, err)
	assert.Equal(t, value, NoCursor)

	assert.NoErr(t, store.SetCursor(ctx, account.ID, "dev1", CursorSubscriptions, 1337))

	value, err = store.GetCursor(ctx, account.ID, "dev1", CursorSubscriptions)
	assert.NoErr(t, err)
	assert.Equal(t, value, int64(1337))

	// going backwards is ignored
	assert.NoErr(t, store.SetCursor(ctx, account.ID, "dev1", CursorSubscriptions, 1000))

	value, err = store.GetCursor(ctx, account.ID, "dev1", CursorSubscriptions)
	assert.NoErr(t, err)
	assert.Equal(t, value, int64(1337))

	// cursors are scoped per device and kind
	value, err = store.GetCursor(ctx, account.ID, "dev2", CursorSubscriptions)
	assert.NoErr(t, err)
	assert.Equal(t, value, NoCursor)

	value, err = store.GetCursor(ctx, account.ID, "dev1", CursorEpisodes)
	assert.NoErr(t, err)
	assert.Equal(t, value, NoCursor)
}

func TestSubscriptionsReplaceAndApply(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	urls, err := store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Len(t, urls, 0)

	initial := []string{"http://example.org/podcast.php", "http://goinglinux.com/mp3podcast.xml"}
	assert.NoErr(t, store.ReplaceSubscriptions(ctx, account.ID, "dev1", initial))

	urls, err = store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Equal(t, urls, initial)

	// add X then remove X leaves the set unchanged
	const x = "http://example.com/feed.rss"

	assert.NoErr(t, store.ApplyChanges(ctx, account.ID, "dev1", []string{x}, nil))
	assert.NoErr(t, store.ApplyChanges(ctx, account.ID, "dev1", nil, []string{x}))

	urls, err = store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Equal(t, urls, initial)

	// duplicate add is a no-op
	assert.NoErr(t, store.ApplyChanges(ctx, account.ID, "dev1", initial[:1], nil))

	urls, err = store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Equal(t, urls, initial)
}

func TestSubscriptionsRenameURL(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	assert.NoErr(t, store.ReplaceSubscriptions(ctx, account.ID, "dev1",
		[]string{"http://x.com/feed  ", "http://example.org/podcast.php"}))

	assert.NoErr(t, store.RenameURL(ctx, account.ID, "dev1", "http://x.com/feed  ", "http://x.com/feed"))

	urls, err := store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.EqualSorted(t, urls, []string{"http://example.org/podcast.php", "http://x.com/feed"})

	// empty replacement drops the subscription
	assert.NoErr(t, store.RenameURL(ctx, account.ID, "dev1", "http://x.com/feed", ""))

	urls, err = store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Equal(t, urls, []string{"http://example.org/podcast.php"})
}

func TestDeleteAccountCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	account := testAccount(t, store)

	assert.NoErr(t, store.ReplaceSubscriptions(ctx, account.ID, "dev1", []string{"http://example.com/feed.rss"}))
	assert.NoErr(t, store.SetCursor(ctx, account.ID, "dev1", CursorEpisodes, 42))
	assert.NoErr(t, store.DeleteAccount(ctx, account.ID))

	_, err := store.GetAccount(ctx, account.Server, account.Username)
	assert.True(t, errors.Is(err, common.ErrNoData))

	urls, err := store.ListSubscriptions(ctx, account.ID, "dev1")
	assert.NoErr(t, err)
	assert.Len(t, urls, 0)
}
