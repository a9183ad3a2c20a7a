package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"blog/internal/store"
)

// addComment does not require login, but a comment is attributed to the
// session's email, so an anonymous caller is turned away with a flash.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request, postID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := h.st.Posts.ByID(postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	detail := fmt.Sprintf("/posts/%d", postID)
	content := strings.TrimSpace(r.FormValue("comment_content"))
	if content == "" {
		setFlash(w, "Empty comments are not allowed.")
		http.Redirect(w, r, detail, http.StatusSeeOther)
		return
	}

	user, ok := h.sessions.CurrentUser(r)
	if !ok {
		setFlash(w, "Please log in to comment.")
		http.Redirect(w, r, detail, http.StatusSeeOther)
		return
	}

	if _, err := h.st.Comments.Create(postID, user.Email, content); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	setFlash(w, "Comment added.")
	http.Redirect(w, r, detail, http.StatusSeeOther)
}

// deleteComment allows deletion only when the stored author name matches the
// session's email. The match is by string, not by user id — a known quirk
// carried over from the data model.
func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request, postID, commentID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	detail := fmt.Sprintf("/posts/%d", postID)

	comment, err := h.st.Comments.ByID(commentID)
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	user, _ := h.sessions.CurrentUser(r)
	if comment.AuthorName != user.Email {
		setFlash(w, "You cannot delete this comment.")
		http.Redirect(w, r, detail, http.StatusSeeOther)
		return
	}

	if err := h.st.Comments.Delete(commentID); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	setFlash(w, "Comment deleted.")
	http.Redirect(w, r, detail, http.StatusSeeOther)
}
