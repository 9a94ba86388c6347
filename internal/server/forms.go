package server

import (
	"errors"
	"mime"
	"net/http"

	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
)

// handleCreateInscription accepts the application either as JSON or as a
// plain HTML form post.
func (s *Service) handleCreateInscription(w http.ResponseWriter, r *http.Request) {
	req := new(types.InscriptionRequest)

	if isFormPost(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			var sizeErr *http.MaxBytesError
			if errors.As(err, &sizeErr) {
				s.renderTooLarge(w, sizeErr)
				return
			}
			s.renderDetail(w, http.StatusBadRequest, "formulário inválido: "+err.Error())
			return
		}

		if err := decoder.Decode(req, r.PostForm); err != nil {
			s.renderDetail(w, http.StatusUnprocessableEntity, "formulário inválido: "+err.Error())
			return
		}
	} else if !s.decodeJSON(w, r, req) {
		return
	}

	if !s.validateBody(w, req) {
		return
	}

	id, err := s.inscriptionRepo.CreateInscription(r.Context(), req)
	if err != nil {
		s.logError(err, "failed to create inscription", logrus.Fields{"opportunity_id": req.OportunidadeID})
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusCreated, types.CreatedResult{Success: true, ID: id})
}

func isFormPost(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "application/x-www-form-urlencoded"
}
