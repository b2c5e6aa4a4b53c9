package httpapi

import (
	"net/http"

	"codesubmit/intake/internal/blob"
	"codesubmit/intake/internal/config"
	"codesubmit/intake/internal/store"
)

type Server struct {
	cfg   config.Config
	store store.Store
	blobs *blob.Dir
	mux   *http.ServeMux
}

func NewServer(cfg config.Config, st store.Store, blobs *blob.Dir) *Server {
	s := &Server{
		cfg:   cfg,
		store: st,
		blobs: blobs,
		mux:   http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/submit", s.handleSubmit)

	// Everything else gets the uniform 404 body.
	s.mux.HandleFunc("/", s.handleNotFound)
}
