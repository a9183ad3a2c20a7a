package store

import (
	"database/sql"
	"errors"
	"time"

	"blog/internal/models"
)

type PostStore struct {
	db *sql.DB
}

func (s *PostStore) Create(userID int64, title, content string) (*models.Post, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`INSERT INTO posts(user_id,title,content,created_at) VALUES(?,?,?,?)`,
		userID, title, content, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Post{ID: id, UserID: userID, Title: title, Content: content, CreatedAt: now}, nil
}

func (s *PostStore) ByID(id int64) (*models.Post, error) {
	var p models.Post
	err := s.db.QueryRow(`SELECT p.id,p.user_id,p.title,p.content,p.created_at,u.email
		FROM posts p JOIN users u ON u.id = p.user_id WHERE p.id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// All returns every post, newest first. There is no pagination.
func (s *PostStore) All() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT p.id,p.user_id,p.title,p.content,p.created_at,u.email
		FROM posts p JOIN users u ON u.id = p.user_id ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.Author); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *PostStore) Update(id int64, title, content string) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, content = ? WHERE id = ?`, title, content, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post together with its comments and reactions in one
// transaction; any failure rolls the whole thing back.
func (s *PostStore) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRow(`SELECT id FROM posts WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM likes_dislikes WHERE post_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
