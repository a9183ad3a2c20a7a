package store

import (
	"database/sql"
	"errors"
	"time"

	"blog/internal/models"
)

type CommentStore struct {
	db *sql.DB
}

func (s *CommentStore) Create(postID int64, authorName, content string) (*models.Comment, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(`INSERT INTO comments(post_id,author_name,content,created_at) VALUES(?,?,?,?)`,
		postID, authorName, content, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Comment{ID: id, PostID: postID, AuthorName: authorName, Content: content, CreatedAt: now}, nil
}

func (s *CommentStore) ByID(id int64) (*models.Comment, error) {
	var c models.Comment
	err := s.db.QueryRow(`SELECT id,post_id,author_name,content,created_at FROM comments WHERE id = ?`, id).
		Scan(&c.ID, &c.PostID, &c.AuthorName, &c.Content, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CommentStore) ByPost(postID int64) ([]models.Comment, error) {
	rows, err := s.db.Query(`SELECT id,post_id,author_name,content,created_at
		FROM comments WHERE post_id = ? ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *CommentStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
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
