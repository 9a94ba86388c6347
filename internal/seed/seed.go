package seed

import (
	"context"
	"errors"
	"fmt"

	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
)

type OngStore interface {
	ResolveOng(ctx context.Context, nome, endereco string) (int64, error)
}

type OpportunityStore interface {
	Opportunities(ctx context.Context) ([]*types.Opportunity, error)
	CreateOpportunity(ctx context.Context, in *types.OpportunityInput) (int64, error)
}

type VolunteerStore interface {
	UpsertVolunteer(ctx context.Context, v *types.Volunteer) error
}

type InscriptionStore interface {
	CreateInscription(ctx context.Context, req *types.InscriptionRequest) (int64, error)
}

// Result lists what a run wrote. Records that already existed are counted
// as skipped.
type Result struct {
	Ongs          []*types.Ong
	Opportunities []*types.Opportunity
	Volunteers    []*types.Volunteer
	Inscriptions  []*types.InscriptionRequest
	Skipped       int
}

type Seeder struct {
	logger        *logrus.Logger
	ongs          OngStore
	opportunities OpportunityStore
	volunteers    VolunteerStore
	inscriptions  InscriptionStore
}

func New(logger *logrus.Logger, ongs OngStore, opportunities OpportunityStore, volunteers VolunteerStore, inscriptions InscriptionStore) *Seeder {
	return &Seeder{
		logger:        logger,
		ongs:          ongs,
		opportunities: opportunities,
		volunteers:    volunteers,
		inscriptions:  inscriptions,
	}
}

// Run loads the demo data below. It can run any number of times against the
// same database: organizations and volunteers are upserted, opportunities
// are matched by title and organization, and repeated applications are
// skipped.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := new(Result)

	for _, ong := range ongs {
		id, err := s.ongs.ResolveOng(ctx, ong.Nome, ong.Endereco)
		if err != nil {
			return nil, fmt.Errorf("failed to seed ong %q: %w", ong.Nome, err)
		}
		result.Ongs = append(result.Ongs, &types.Ong{ID: id, Nome: ong.Nome, Endereco: ong.Endereco, Email: types.PlaceholderOngEmail(ong.Nome)})
	}
	s.logger.WithField("count", len(result.Ongs)).Info("ongs seeded")

	existing, err := s.opportunities.Opportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing opportunities: %w", err)
	}

	byTitle := make(map[string]int64, len(existing))
	for _, o := range existing {
		byTitle[opportunityKey(o.OngNome, o.Titulo)] = o.ID
	}

	for _, in := range opportunities {
		key := opportunityKey(in.OngNome, in.Titulo)
		if id, ok := byTitle[key]; ok {
			s.logger.WithFields(logrus.Fields{"opportunity_id": id, "titulo": in.Titulo}).Debug("opportunity already seeded")
			result.Skipped++
			continue
		}

		id, err := s.opportunities.CreateOpportunity(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("failed to seed opportunity %q: %w", in.Titulo, err)
		}
		byTitle[key] = id
		result.Opportunities = append(result.Opportunities, &types.Opportunity{
			ID:         id,
			Titulo:     in.Titulo,
			OngNome:    in.OngNome,
			Endereco:   in.Endereco,
			StatusVaga: in.StatusVaga,
			TipoAcao:   in.TipoAcao,
		})
	}
	s.logger.WithField("count", len(result.Opportunities)).Info("opportunities seeded")

	for _, v := range volunteers {
		volunteer := *v
		if err := s.volunteers.UpsertVolunteer(ctx, &volunteer); err != nil {
			return nil, fmt.Errorf("failed to seed volunteer %q: %w", v.Nome, err)
		}
		result.Volunteers = append(result.Volunteers, &volunteer)
	}
	s.logger.WithField("count", len(result.Volunteers)).Info("volunteers seeded")

	for _, a := range applications {
		id, ok := byTitle[opportunityKey(a.ong, a.titulo)]
		if !ok {
			return nil, fmt.Errorf("seed application references unknown opportunity %q", a.titulo)
		}

		req := &types.InscriptionRequest{
			Nome:           a.volunteer.Nome,
			CPF:            a.volunteer.CPF,
			Nascimento:     utils.PtrString(a.volunteer.Nascimento),
			Mensagem:       a.mensagem,
			OportunidadeID: id,
		}

		_, err := s.inscriptions.CreateInscription(ctx, req)
		if errors.Is(err, types.ErrAlreadyEnrolled) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to seed application of %q to %q: %w", a.volunteer.Nome, a.titulo, err)
		}
		result.Inscriptions = append(result.Inscriptions, req)
	}
	s.logger.WithFields(logrus.Fields{
		"count":   len(result.Inscriptions),
		"skipped": result.Skipped,
	}).Info("inscriptions seeded")

	return result, nil
}

func opportunityKey(ong, titulo string) string {
	return ong + "\x00" + titulo
}
