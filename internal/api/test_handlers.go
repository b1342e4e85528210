package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/models"
)

type startTestRequest struct {
	ListID       uuid.UUID       `json:"list_id"`
	TestType     models.TestType `json:"test_type"`
	MaxQuestions int             `json:"max_questions"`
}

func (s *Server) handleStartTest(w http.ResponseWriter, r *http.Request) {
	var req startTestRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.ListID == uuid.Nil {
		handleError(w, r, errors.NewBadRequestError("list_id is required"))
		return
	}

	state, err := s.AssessmentService.StartTest(r.Context(), req.ListID, req.TestType, req.MaxQuestions)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, state)
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.AssessmentService.SubmitAnswer(r.Context(), id, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFinishTest(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	stat, err := s.AssessmentService.FinishTest(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stat)
}
