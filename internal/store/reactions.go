package store

import "database/sql"

type ReactionStore struct {
	db *sql.DB
}

// Exists reports whether the user already has a row of the given kind for
// the post. Callers check this before Create; nothing stops two concurrent
// requests from both passing the check, so duplicates are possible under
// racing writes.
func (s *ReactionStore) Exists(userID, postID int64, isLike bool) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM likes_dislikes WHERE user_id = ? AND post_id = ? AND is_like = ?`,
		userID, postID, isLike).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *ReactionStore) Create(userID, postID int64, isLike bool) error {
	_, err := s.db.Exec(`INSERT INTO likes_dislikes(user_id,post_id,is_like) VALUES(?,?,?)`,
		userID, postID, isLike)
	return err
}

func (s *ReactionStore) CountLikes(postID int64) (int, error) {
	return s.count(postID, true)
}

func (s *ReactionStore) CountDislikes(postID int64) (int, error) {
	return s.count(postID, false)
}

func (s *ReactionStore) count(postID int64, isLike bool) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM likes_dislikes WHERE post_id = ? AND is_like = ?`,
		postID, isLike).Scan(&n)
	return n, err
}
