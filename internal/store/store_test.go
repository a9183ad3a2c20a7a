package store

import (
	"testing"

	"blog/internal/db"
)

func testStores(t *testing.T) *Stores {
	t.Helper()
	dbc, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbc.Close() })
	if err := db.Migrate(dbc); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(dbc)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	st := testStores(t)

	if _, err := st.Users.Create("a@x.com", "hash"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := st.Users.Create("a@x.com", "other"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserByEmailNotFound(t *testing.T) {
	st := testStores(t)

	if _, err := st.Users.ByEmail("nobody@x.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
