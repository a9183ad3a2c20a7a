package auth

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"

	"blog/internal/models"
)

const sessionCookie = "blog_session"

// Manager owns the sessions table and the session cookie.
type Manager struct {
	db     *sql.DB
	maxAge time.Duration
	secure bool
}

func NewManager(db *sql.DB, maxAge time.Duration, secure bool) *Manager {
	return &Manager{db: db, maxAge: maxAge, secure: secure}
}

func (m *Manager) Create(w http.ResponseWriter, userID int64) error {
	id := uuid.New().String()
	expires := time.Now().Add(m.maxAge)

	_, err := m.db.Exec(`INSERT INTO sessions(id,user_id,expires_at) VALUES(?,?,?)`, id, userID, expires)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
	return nil
}

func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	c, _ := r.Cookie(sessionCookie)
	if c != nil && c.Value != "" {
		m.db.Exec(`DELETE FROM sessions WHERE id = ?`, c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// CurrentUser resolves the request's session cookie to the logged-in user.
// Middleware and handlers call this instead of touching the sessions table.
func (m *Manager) CurrentUser(r *http.Request) (*models.User, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	var u models.User
	var exp time.Time
	err = m.db.QueryRow(`SELECT u.id, u.email, u.password_hash, u.created_at, s.expires_at
		FROM sessions s JOIN users u ON u.id = s.user_id WHERE s.id = ?`, c.Value).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &exp)
	if err != nil || time.Now().After(exp) {
		return nil, false
	}
	return &u, true
}
