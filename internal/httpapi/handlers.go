package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"codesubmit/intake/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

type submitRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type submitResponse struct {
	ReservationID int64 `json:"reservation_id"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// All three fields are required; one unified message covers them.
	if req.Username == "" || req.Password == "" || req.Code == "" {
		writeDetail(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	sub, err := s.store.CreateSubmission(r.Context(), store.CreateSubmissionRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		log.Printf("create submission failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// The row is already committed; a failed blob write leaves it in
	// place with no corresponding file. No rollback is attempted.
	if err := s.blobs.Write(sub.ID, req.Code); err != nil {
		log.Printf("write code blob for submission %d failed: %v", sub.ID, err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{ReservationID: sub.ID})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
