package server

import (
	"net/http"

	"tempobemgasto/internal/store"
	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	msgReplaced         = "Oportunidade atualizada com sucesso."
	msgReplaceUnchanged = "Nenhuma alteração detectada no banco de dados, mas a operação foi registrada."
	msgPatched          = "Oportunidade atualizada parcialmente com sucesso."
	msgPatchUnchanged   = "Nenhuma alteração detectada no banco de dados para os campos fornecidos."
	msgPatchEmpty       = "Nenhum campo válido para atualizar no banco de dados ou nenhuma alteração."
	msgPatchOnlyIgnored = "Nenhum campo válido para atualizar a oportunidade, apenas ong_nome ignorado."
)

func (s *Service) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	opportunities, err := s.opportunityRepo.Opportunities(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list opportunities")
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, opportunities)
}

func (s *Service) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	opportunity, err := s.opportunityRepo.Opportunity(r.Context(), id)
	if err != nil {
		s.logError(err, "failed to fetch opportunity", logrus.Fields{"opportunity_id": id})
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, opportunity)
}

func (s *Service) handleCreateOpportunity(w http.ResponseWriter, r *http.Request) {
	in := types.NewOpportunityInput()
	if !s.decodeJSON(w, r, in) || !s.validateBody(w, in) {
		return
	}

	id, err := s.opportunityRepo.CreateOpportunity(r.Context(), in)
	if err != nil {
		s.logger.WithError(err).WithField("ong_nome", in.OngNome).Error("failed to create opportunity")
		s.renderError(w, err)
		return
	}

	s.renderJSON(w, http.StatusCreated, types.CreatedResult{Success: true, ID: id})
}

func (s *Service) handleReplaceOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	in := types.NewOpportunityInput()
	if !s.decodeJSON(w, r, in) || !s.validateBody(w, in) {
		return
	}

	outcome, err := s.opportunityRepo.ReplaceOpportunity(r.Context(), id, in)
	if err != nil {
		s.logError(err, "failed to replace opportunity", logrus.Fields{"opportunity_id": id})
		s.renderError(w, err)
		return
	}

	message := msgReplaced
	if outcome != types.WriteApplied {
		message = msgReplaceUnchanged
	}

	s.renderJSON(w, http.StatusOK, types.OpportunityWriteResult{Success: true, Message: message})
}

func (s *Service) handlePatchOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	patch := new(types.OpportunityPatch)
	if !s.decodeJSON(w, r, patch) || !s.validateBody(w, patch) {
		return
	}

	if violations := patch.NullViolations(); len(violations) > 0 {
		errs := make(map[string]string, len(violations))
		for _, field := range violations {
			errs[field] = "não pode ser nulo"
		}
		s.renderJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "dados inválidos", Errors: errs})
		return
	}

	changes, dropped := store.OpportunityChanges(patch.Fields())
	if len(dropped) > 0 {
		s.logger.WithFields(logrus.Fields{
			"opportunity_id": id,
			"fields":         dropped,
		}).Warn("ignoring fields without a column in partial update")
	}

	outcome, err := s.opportunityRepo.PatchOpportunity(r.Context(), id, changes)
	if err != nil {
		s.logError(err, "failed to patch opportunity", logrus.Fields{"opportunity_id": id})
		s.renderError(w, err)
		return
	}

	var message string
	switch outcome {
	case types.WriteApplied:
		message = msgPatched
	case types.WriteUnchanged:
		message = msgPatchUnchanged
	default:
		message = msgPatchEmpty
		if len(dropped) > 0 {
			message = msgPatchOnlyIgnored
		}
	}

	s.renderJSON(w, http.StatusOK, types.OpportunityWriteResult{Success: true, Message: message})
}

func (s *Service) handleDeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	err := s.opportunityRepo.DeleteOpportunity(r.Context(), id)
	if err != nil {
		s.logError(err, "failed to delete opportunity", logrus.Fields{"opportunity_id": id})
		s.renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
