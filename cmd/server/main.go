package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"blog/internal/auth"
	"blog/internal/config"
	"blog/internal/db"
	"blog/internal/handlers"
	"blog/internal/store"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		log.Fatal(err)
	}

	dbc, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer dbc.Close()

	if err := db.Migrate(dbc); err != nil {
		log.Fatal(err)
	}

	st := store.New(dbc)
	sessions := auth.NewManager(dbc, cfg.Session.TTL, cfg.Server.CookieSecure)
	accounts := auth.NewService(st.Users)
	tpls := template.Must(template.ParseGlob(filepath.Join("web", "templates", "*.html")))

	h := handlers.New(st, sessions, accounts, tpls)

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("./web/static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", h.Home)
	mux.HandleFunc("/posts", h.ListPosts)
	mux.HandleFunc("/posts/", h.PostTree)
	mux.HandleFunc("/add_post", h.RequireAuth(h.AddPost))
	mux.HandleFunc("/register", h.Register)
	mux.HandleFunc("/login", h.Login)
	mux.HandleFunc("/logout", h.RequireAuth(h.Logout))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.WithLogging(handlers.WithRecover(mux)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
