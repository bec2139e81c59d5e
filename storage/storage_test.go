package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetAndGet(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "v1" {
		t.Errorf("Get = %q, want v1", got)
	}

	if err := store.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Get("k")
	if got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Get("absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "" {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestEmptyValueDeletes(t *testing.T) {
	store := openTestStore(t)

	store.Set("k", "v")
	if err := store.Set("k", ""); err != nil {
		t.Fatalf("delete via empty set: %v", err)
	}
	got, _ := store.Get("k")
	if got != "" {
		t.Errorf("Get after delete = %q, want empty", got)
	}
}

func TestUserInfo(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetUserInfo("u-1", "ada@example.com", "Ada"); err != nil {
		t.Fatalf("SetUserInfo: %v", err)
	}

	id, _ := store.UserID()
	email, _ := store.UserEmail()
	name, _ := store.UserName()
	if id != "u-1" || email != "ada@example.com" || name != "Ada" {
		t.Errorf("got %q/%q/%q", id, email, name)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	store.SetUserInfo("u-1", "a@b.c", "Ada")
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	for _, key := range []string{KeyUserID, KeyUserEmail, KeyUserName} {
		got, err := store.Get(key)
		if err != nil {
			t.Fatalf("Get(%q): %v", key, err)
		}
		if got != "" {
			t.Errorf("Get(%q) = %q after Clear, want empty", key, got)
		}
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.SetUserID("u-9")
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	id, err := reopened.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != "u-9" {
		t.Errorf("UserID = %q, want u-9", id)
	}
}
