package api

import (
	"net/http"
	"strconv"

	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/services"
)

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	listID, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var input services.WordInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.WordService.AddWord(r.Context(), listID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, word)
}

type bulkWordsRequest struct {
	Words []services.WordInput `json:"words"`
}

func (s *Server) handleAddWords(w http.ResponseWriter, r *http.Request) {
	listID, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req bulkWordsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	results, err := s.WordService.AddWords(r.Context(), listID, req.Words)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusMultiStatus, map[string]any{"results": results})
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	listID, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.WordFilter{ListID: listID}
	q := r.URL.Query()
	if raw := q.Get("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid status"))
			return
		}
		filter.Status = status
	}
	filter.Search = q.Get("search")
	if raw := q.Get("limit"); raw != "" {
		if filter.Limit, err = strconv.Atoi(raw); err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if filter.Offset, err = strconv.Atoi(raw); err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid offset"))
			return
		}
	}

	words, err := s.WordService.ListWords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"words": words})
}

func (s *Server) handleUpdateWord(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var update models.WordUpdate
	if err := decodeJSON(r, &update); err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.WordService.UpdateWord(r.Context(), id, update)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, word)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.WordService.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
