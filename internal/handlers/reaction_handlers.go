package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"blog/internal/store"
)

// react records a like (isLike) or dislike for the current user. A second
// identical reaction is refused, but a like does not remove an existing
// dislike or vice versa; the two kinds are independent rows. The
// check-then-insert is not atomic, so concurrent requests can slip in
// duplicates.
func (h *Handler) react(w http.ResponseWriter, r *http.Request, postID int64, isLike bool) {
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

	user, _ := h.sessions.CurrentUser(r)
	exists, err := h.st.Reactions.Exists(user.ID, postID, isLike)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	detail := fmt.Sprintf("/posts/%d", postID)
	if exists {
		if isLike {
			setFlash(w, "You already liked this post.")
		} else {
			setFlash(w, "You already disliked this post.")
		}
		http.Redirect(w, r, detail, http.StatusSeeOther)
		return
	}

	if err := h.st.Reactions.Create(user.ID, postID, isLike); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if isLike {
		setFlash(w, "Post liked.")
	} else {
		setFlash(w, "Post disliked.")
	}
	http.Redirect(w, r, detail, http.StatusSeeOther)
}
