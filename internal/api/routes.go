package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/lists", func(r chi.Router) {
		r.Post("/", s.handleCreateList)
		r.Get("/", s.handleLists)
		r.Get("/{id}", s.handleGetList)
		r.Patch("/{id}", s.handleRenameList)
		r.Delete("/{id}", s.handleDeleteList)
		r.Get("/{id}/stats", s.handleListStats)
		r.Get("/{id}/words", s.handleListWords)
		r.Post("/{id}/words", s.handleAddWord)
		r.Post("/{id}/words/bulk", s.handleAddWords)
	})

	r.Patch("/words/{id}", s.handleUpdateWord)
	r.Delete("/words/{id}", s.handleDeleteWord)

	r.Route("/study/sessions", func(r chi.Router) {
		r.Post("/", s.handleStartSession)
		r.Get("/{id}", s.handleCurrentCard)
		r.Post("/{id}/flip", s.handleFlipCard)
		r.Post("/{id}/rate", s.handleRateCard)
		r.Delete("/{id}", s.handleFinishSession)
	})

	r.Route("/tests", func(r chi.Router) {
		r.Post("/", s.handleStartTest)
		r.Post("/{id}/answers", s.handleSubmitAnswer)
		r.Post("/{id}/finish", s.handleFinishTest)
	})

	return r
}
