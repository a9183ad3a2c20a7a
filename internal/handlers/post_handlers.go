package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"blog/internal/store"
)

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.st.Posts.All()
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "posts", map[string]any{"Title": "Posts", "Posts": posts})
}

// PostTree dispatches everything under /posts/: the detail page and the
// per-post actions (add_comment, delete_comment, delete, update, like,
// dislike).
func (h *Handler) PostTree(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/posts/"), "/")
	if rest == "" {
		h.ListPosts(w, r)
		return
	}
	parts := strings.Split(rest, "/")
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1:
		h.postDetail(w, r, id)
	case len(parts) == 2 && parts[1] == "add_comment":
		h.addComment(w, r, id)
	case len(parts) == 2 && parts[1] == "delete":
		h.deletePost(w, r, id)
	case len(parts) == 2 && parts[1] == "update":
		h.updatePost(w, r, id)
	case len(parts) == 2 && parts[1] == "like":
		h.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			h.react(w, r, id, true)
		})(w, r)
	case len(parts) == 2 && parts[1] == "dislike":
		h.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			h.react(w, r, id, false)
		})(w, r)
	case len(parts) == 3 && parts[1] == "delete_comment":
		cid, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			h.NotFound(w, r)
			return
		}
		h.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			h.deleteComment(w, r, id, cid)
		})(w, r)
	default:
		h.NotFound(w, r)
	}
}

func (h *Handler) postDetail(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	post, err := h.st.Posts.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	comments, err := h.st.Comments.ByPost(id)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	likes, err := h.st.Reactions.CountLikes(id)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	dislikes, err := h.st.Reactions.CountDislikes(id)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "post_detail", map[string]any{
		"Title":    post.Title,
		"Post":     post,
		"Comments": comments,
		"Likes":    likes,
		"Dislikes": dislikes,
	})
}

func (h *Handler) AddPost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "post_form", map[string]any{"Title": "New Post"})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	user, _ := h.sessions.CurrentUser(r)
	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "post_form", map[string]any{"Title": "New Post", "Error": "Title and content are required."})
		return
	}

	if _, err := h.st.Posts.Create(user.ID, title, content); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// updatePost has no ownership check: any caller, logged in or not, may edit
// any post. Known issue, kept as-is.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request, id int64) {
	post, err := h.st.Posts.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "post_edit", map[string]any{"Title": "Edit Post", "Post": post})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "post_edit", map[string]any{"Title": "Edit Post", "Post": post, "Error": "Title and content are required."})
		return
	}

	if err := h.st.Posts.Update(id, title, content); err != nil {
		h.render(w, r, "post_edit", map[string]any{
			"Title": "Edit Post",
			"Post":  post,
			"Error": "Updating the post failed: " + err.Error(),
		})
		return
	}
	setFlash(w, "Post updated.")
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", id), http.StatusSeeOther)
}

// deletePost has no ownership check either. A storage failure is surfaced to
// the caller as plain text after rollback.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	err := h.st.Posts.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "Error deleting post: %v", err)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}
