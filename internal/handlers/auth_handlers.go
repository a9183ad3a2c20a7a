package handlers

import (
	"errors"
	"log"
	"net/http"

	"blog/internal/auth"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if _, logged := h.sessions.CurrentUser(r); logged {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "register", map[string]any{"Title": "Register"})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if confirm := r.FormValue("confirm_password"); confirm != password {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "register", map[string]any{"Title": "Register", "Error": "Passwords must match."})
		return
	}

	_, err := h.accounts.Register(email, password)
	if err != nil {
		log.Printf("registration failed for %q: %v", email, err)
		msg := "Registration failed."
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			msg = "Email already registered."
		case errors.Is(err, auth.ErrInvalidInput):
			msg = "Email and password are required, and the email must be valid."
		}
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "register", map[string]any{"Title": "Register", "Error": msg})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if _, logged := h.sessions.CurrentUser(r); logged {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "login", map[string]any{"Title": "Login"})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.accounts.Authenticate(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		h.render(w, r, "login", map[string]any{"Title": "Login", "Error": "Wrong email or password."})
		return
	}

	if err := h.sessions.Create(w, user.ID); err != nil {
		log.Printf("session create failed for user %d: %v", user.ID, err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
