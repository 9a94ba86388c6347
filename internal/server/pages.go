package server

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.renderJSON(w, http.StatusOK, map[string]string{
		"message": "Bem-vindo à API Tempo Bem Gasto!",
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.WithError(err).Error("health check failed")
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.renderDetail(w, http.StatusNotFound, "Not Found")
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.renderDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// pathID reads the positive integer route parameter name. It renders a 422
// and returns false when the value is not one.
func (s *Service) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		s.renderJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Detail: "identificador inválido",
			Errors: map[string]string{name: "deve ser um inteiro positivo"},
		})
		return 0, false
	}

	return id, true
}
