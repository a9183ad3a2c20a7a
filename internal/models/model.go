package models

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Post struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	Author    string // author's email, filled in by list/detail queries
}

type Comment struct {
	ID         int64
	PostID     int64
	AuthorName string // commenter's email at creation time, not a user reference
	Content    string
	CreatedAt  time.Time
}

type LikeDislike struct {
	ID     int64
	UserID int64
	PostID int64
	IsLike bool // true = like, false = dislike
}

type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}
