package api

import (
	"net/http"

	"github.com/lmeunier/vocaflash/internal/logger"
)

type createListRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	list, err := s.ListService.CreateList(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, list)
}

func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.ListService.Lists(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"lists": lists})
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := s.ListService.GetList(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleRenameList(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ListService.RenameList(r.Context(), id, req.Name); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"renamed": true})
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())
	if err := s.ListService.DeleteList(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("list deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListStats(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.AssessmentService.GetListStats(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"stats": stats})
}
