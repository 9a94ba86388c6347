package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Service) renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) renderDetail(w http.ResponseWriter, status int, detail string) {
	s.renderJSON(w, status, errorResponse{Detail: detail})
}

// renderError maps a repository error to its status code. Not-found and
// conflict errors are expected and carry their own message; anything else
// is a storage failure.
func (s *Service) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrOpportunityNotFound), errors.Is(err, types.ErrVolunteerNotFound):
		s.renderDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrAlreadyEnrolled):
		s.renderDetail(w, http.StatusConflict, err.Error())
	default:
		s.renderDetail(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON reads a single JSON value from the body into v. A body that
// is not JSON at all, or carries anything after the value, is a 400; a body
// with values of the wrong type is a 422; a body over maxBodyBytes is a 413.
func (s *Service) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(v)
	if err == nil {
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			s.renderDetail(w, http.StatusBadRequest, "JSON inválido: conteúdo após o fim do documento")
			return false
		}
		return true
	}

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &sizeErr):
		s.renderTooLarge(w, sizeErr)
	case errors.As(err, &typeErr):
		s.renderJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Detail: "corpo da requisição inválido",
			Errors: map[string]string{typeErr.Field: "tipo inválido, esperado " + typeErr.Type.String()},
		})
	case errors.Is(err, io.EOF):
		s.renderDetail(w, http.StatusBadRequest, "corpo da requisição vazio")
	default:
		s.renderDetail(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
	}

	return false
}

func (s *Service) renderTooLarge(w http.ResponseWriter, err *http.MaxBytesError) {
	s.renderDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("corpo da requisição excede %d bytes", err.Limit))
}

// logError logs a failed repository call. Missing rows are routine and only
// logged at debug level.
func (s *Service) logError(err error, msg string, fields logrus.Fields) {
	entry := s.logger.WithError(err).WithFields(fields)
	if errors.Is(err, types.ErrOpportunityNotFound) || errors.Is(err, types.ErrVolunteerNotFound) {
		entry.Debug(msg)
		return
	}
	entry.Error(msg)
}
