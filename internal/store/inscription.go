package store

import (
	"context"
	"fmt"
	"time"

	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inscriptionTableName = "inscricoes"

type InscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewInscriptionRepository(pool *pgxpool.Pool) *InscriptionRepository {
	return &InscriptionRepository{pool: pool}
}

// InscriptionsByVolunteer returns the applications of a volunteer, newest
// first. An unknown volunteer simply has none.
func (r *InscriptionRepository) InscriptionsByVolunteer(ctx context.Context, volunteerID int64) ([]*types.VolunteerInscription, error) {
	query, args, err := psql().
		Select(
			"i.id AS inscricao_id",
			"i.oportunidade_id",
			"o.titulo AS oportunidade_titulo",
			"i.data_inscricao",
			"i.status",
		).
		From(inscriptionTableName + " i").
		Join("oportunidades o ON i.oportunidade_id = o.id").
		Where(sq.Eq{"i.voluntario_id": volunteerID}).
		OrderBy("i.data_inscricao DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inscriptions query: %w", err)
	}

	inscriptions := make([]*types.VolunteerInscription, 0)
	err = pgxscan.Select(ctx, r.pool, &inscriptions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inscriptions for volunteer %d: %w", volunteerID, err)
	}

	return inscriptions, nil
}

// CreateInscription enrolls the volunteer described by req, registering
// them first when their CPF is unknown.
func (r *InscriptionRepository) CreateInscription(ctx context.Context, req *types.InscriptionRequest) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := lockOpportunity(ctx, tx, req.OportunidadeID); err != nil {
		return 0, err
	}

	volunteer := &types.Volunteer{
		Nome:       req.Nome,
		CPF:        req.CPF,
		Nascimento: utils.OptionalString(req.Nascimento),
	}

	volunteerID, err := upsertVolunteer(ctx, tx, volunteer)
	if err != nil {
		return 0, err
	}

	query, args, err := psql().
		Insert(inscriptionTableName).
		Columns("voluntario_id", "oportunidade_id", "data_inscricao", "status", "mensagem").
		Values(volunteerID, req.OportunidadeID, time.Now().UTC(), types.InscriptionStatusPending, utils.OptionalString(req.Mensagem)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert inscription query: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, types.ErrAlreadyEnrolled
		}
		return 0, fmt.Errorf("failed to create inscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}
