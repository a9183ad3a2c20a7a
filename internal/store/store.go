package store

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound   = errors.New("store: not found")
	ErrEmailTaken = errors.New("store: email already taken")
)

// Stores bundles the per-entity repositories so handlers take a single
// dependency instead of four.
type Stores struct {
	Users     *UserStore
	Posts     *PostStore
	Comments  *CommentStore
	Reactions *ReactionStore
}

func New(db *sql.DB) *Stores {
	return &Stores{
		Users:     &UserStore{db: db},
		Posts:     &PostStore{db: db},
		Comments:  &CommentStore{db: db},
		Reactions: &ReactionStore{db: db},
	}
}
