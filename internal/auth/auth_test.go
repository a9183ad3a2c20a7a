package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"blog/internal/db"
	"blog/internal/store"
)

func TestSessionLifecycle(t *testing.T) {
	dbc, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbc.Close() })
	if err := db.Migrate(dbc); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	u, err := store.New(dbc).Users.Create("a@x.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	m := NewManager(dbc, time.Hour, false)

	w := httptest.NewRecorder()
	if err := m.Create(w, u.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])
	got, ok := m.CurrentUser(r)
	if !ok {
		t.Fatal("session not resolved")
	}
	if got.Email != "a@x.com" {
		t.Fatalf("wrong user: %q", got.Email)
	}

	w2 := httptest.NewRecorder()
	m.Destroy(w2, r)
	if _, ok := m.CurrentUser(r); ok {
		t.Fatal("session survived Destroy")
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	dbc, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbc.Close() })
	if err := db.Migrate(dbc); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	u, err := store.New(dbc).Users.Create("a@x.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	m := NewManager(dbc, -time.Minute, false)
	w := httptest.NewRecorder()
	if err := m.Create(w, u.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	if _, ok := m.CurrentUser(r); ok {
		t.Fatal("expired session accepted")
	}
}
