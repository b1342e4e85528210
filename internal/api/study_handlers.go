package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/models"
)

type startSessionRequest struct {
	ListID   uuid.UUID             `json:"list_id"`
	Settings *models.StudySettings `json:"settings,omitempty"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.ListID == uuid.Nil {
		handleError(w, r, errors.NewBadRequestError("list_id is required"))
		return
	}

	state, err := s.StudyService.StartSession(r.Context(), req.ListID, req.Settings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, state)
}

func (s *Server) handleCurrentCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	state, err := s.StudyService.CurrentCard(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleFlipCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	state, err := s.StudyService.FlipCard(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

type rateCardRequest struct {
	Rating models.Rating `json:"rating"`
}

func (s *Server) handleRateCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req rateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	state, err := s.StudyService.RateCard(r.Context(), id, req.Rating)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.StudyService.FinishSession(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
