package server

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.volunteerRepo.Volunteers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list volunteers")
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, volunteers)
}

func (s *Service) handleGetVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	volunteer, err := s.volunteerRepo.Volunteer(r.Context(), id)
	if err != nil {
		s.logError(err, "failed to fetch volunteer", logrus.Fields{"volunteer_id": id})
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, volunteer)
}

func (s *Service) handleListVolunteerInscriptions(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	inscriptions, err := s.inscriptionRepo.InscriptionsByVolunteer(r.Context(), id)
	if err != nil {
		s.logger.WithError(err).WithField("volunteer_id", id).Error("failed to list volunteer inscriptions")
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, inscriptions)
}

func (s *Service) handleListOngs(w http.ResponseWriter, r *http.Request) {
	ongs, err := s.ongRepo.Ongs(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list ongs")
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, ongs)
}
