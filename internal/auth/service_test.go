package auth

import (
	"errors"
	"testing"

	"blog/internal/db"
	"blog/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	dbc, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbc.Close() })
	if err := db.Migrate(dbc); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(store.New(dbc).Users)
}

func TestRegisterValidation(t *testing.T) {
	svc := testService(t)

	cases := []struct {
		email    string
		password string
		ok       bool
	}{
		{"user@example.com", "secret123", true},
		{"not-an-email", "secret123", false},
		{"user2@example.com", "", false},
		{"", "secret123", false},
	}
	for i, c := range cases {
		_, err := svc.Register(c.email, c.password)
		if c.ok && err != nil {
			t.Fatalf("case %d expected ok, got err: %v", i, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Register("a@x.com", "p1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register("a@x.com", "p2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// The original application accepted any password at login; that is fixed
// here, so a wrong password must be rejected.
func TestAuthenticateVerifiesPassword(t *testing.T) {
	svc := testService(t)

	u, err := svc.Register("a@x.com", "p1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Authenticate("a@x.com", "p1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("wrong user: %d != %d", got.ID, u.ID)
	}

	if _, err := svc.Authenticate("a@x.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@x.com", "p1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "super-secret" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword("super-secret", hash) {
		t.Fatal("check failed for correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("check passed for wrong password")
	}
}
