package store

import (
	"context"
	"fmt"

	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const volunteerTableName = "voluntarios"

var volunteerColumns = utils.StructTagValues(types.Volunteer{})

type VolunteerRepository struct {
	pool *pgxpool.Pool
}

func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{pool: pool}
}

func (r *VolunteerRepository) Volunteers(ctx context.Context) ([]*types.Volunteer, error) {
	query, args, err := psql().
		Select(volunteerColumns...).
		From(volunteerTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate volunteers query: %w", err)
	}

	volunteers := make([]*types.Volunteer, 0)
	err = pgxscan.Select(ctx, r.pool, &volunteers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	return volunteers, nil
}

func (r *VolunteerRepository) Volunteer(ctx context.Context, id int64) (*types.Volunteer, error) {
	query, args, err := psql().
		Select(volunteerColumns...).
		From(volunteerTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate volunteer query: %w", err)
	}

	var volunteer types.Volunteer
	err = pgxscan.Get(ctx, r.pool, &volunteer, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to fetch volunteer %d: %w", id, err)
	}

	return &volunteer, nil
}

// UpsertVolunteer stores v keyed by CPF and sets v.ID. An existing
// volunteer keeps the data already on file.
func (r *VolunteerRepository) UpsertVolunteer(ctx context.Context, v *types.Volunteer) error {
	id, err := upsertVolunteer(ctx, r.pool, v)
	if err != nil {
		return err
	}

	v.ID = id
	return nil
}

func upsertVolunteer(ctx context.Context, q queryRower, v *types.Volunteer) (int64, error) {
	query, args, err := volunteerUpsertQuery(v)
	if err != nil {
		return 0, fmt.Errorf("failed to generate volunteer upsert query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert volunteer: %w", err)
	}

	return id, nil
}

func volunteerUpsertQuery(v *types.Volunteer) (string, []any, error) {
	return psql().
		Insert(volunteerTableName).
		Columns("nome", "cpf", "nascimento", "email", "telefone").
		Values(v.Nome, types.NormalizeCPF(v.CPF), v.Nascimento, v.Email, v.Telefone).
		Suffix("ON CONFLICT (cpf) DO UPDATE SET cpf = EXCLUDED.cpf RETURNING id").
		ToSql()
}
