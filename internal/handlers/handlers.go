package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"blog/internal/auth"
	"blog/internal/store"
)

type Handler struct {
	st       *store.Stores
	sessions *auth.Manager
	accounts *auth.Service
	tpls     *template.Template
}

func New(st *store.Stores, sessions *auth.Manager, accounts *auth.Service, tpls *template.Template) *Handler {
	return &Handler{st: st, sessions: sessions, accounts: accounts, tpls: tpls}
}

const flashCookie = "blog_flash"

func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(msg),
		Path:  "/",
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

// render executes the named template, folding in the keys every page wants.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	user, logged := h.sessions.CurrentUser(r)
	data["Logged"] = logged
	if logged {
		data["UserEmail"] = user.Email
	}
	if f := popFlash(w, r); f != "" {
		data["Flash"] = f
	}
	h.tpls.ExecuteTemplate(w, name, data)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	h.render(w, r, "home", map[string]any{"Title": "Blog"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, r, "notfound", map[string]any{"Title": "Not Found"})
}
