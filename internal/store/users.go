package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"blog/internal/models"
)

type UserStore struct {
	db *sql.DB
}

func (s *UserStore) Create(email, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`INSERT INTO users(email,password_hash,created_at) VALUES(?,?,?)`,
		email, passwordHash, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Email: email, PasswordHash: passwordHash, CreatedAt: now}, nil
}

func (s *UserStore) ByEmail(email string) (*models.User, error) {
	return s.scanOne(s.db.QueryRow(
		`SELECT id,email,password_hash,created_at FROM users WHERE email = ?`, email))
}

func (s *UserStore) ByID(id int64) (*models.User, error) {
	return s.scanOne(s.db.QueryRow(
		`SELECT id,email,password_hash,created_at FROM users WHERE id = ?`, id))
}

func (s *UserStore) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
