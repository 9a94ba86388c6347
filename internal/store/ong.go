package store

import (
	"context"
	"errors"
	"fmt"

	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ongTableName = "ongs"

var ongColumns = utils.StructTagValues(types.Ong{})

type OngRepository struct {
	pool *pgxpool.Pool
}

func NewOngRepository(pool *pgxpool.Pool) *OngRepository {
	return &OngRepository{pool: pool}
}

func (r *OngRepository) Ongs(ctx context.Context) ([]*types.Ong, error) {
	query, args, err := psql().
		Select(ongColumns...).
		From(ongTableName).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ongs query: %w", err)
	}

	ongs := make([]*types.Ong, 0)
	err = pgxscan.Select(ctx, r.pool, &ongs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ongs: %w", err)
	}

	return ongs, nil
}

// ResolveOng returns the id of the organization called nome, creating it
// when it does not exist yet.
func (r *OngRepository) ResolveOng(ctx context.Context, nome, endereco string) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	id, err := resolveOngID(ctx, tx, nome, endereco)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// resolveOngID is the find-or-create step of opportunity creation. The
// upsert relies on the unique index on ongs.nome, so two requests creating
// the same organization at once end up with the same row.
func resolveOngID(ctx context.Context, q queryRower, nome, endereco string) (int64, error) {
	id, err := ongIDByName(ctx, q, nome)
	if err != nil {
		return 0, err
	}
	if id != 0 {
		return id, nil
	}

	query, args, err := ongUpsertQuery(nome, endereco)
	if err != nil {
		return 0, fmt.Errorf("failed to generate ong upsert query: %w", err)
	}

	err = q.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to upsert ong %q: %w", nome, err)
	}
	if id != 0 {
		return id, nil
	}

	id, err = ongIDByName(ctx, q, nome)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, types.ErrOngNotResolved
	}

	return id, nil
}

func ongIDByName(ctx context.Context, q queryRower, nome string) (int64, error) {
	query, args, err := psql().
		Select("id").
		From(ongTableName).
		Where(sq.Eq{"nome": nome}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate ong lookup query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up ong %q: %w", nome, err)
	}

	return id, nil
}

func ongUpsertQuery(nome, endereco string) (string, []any, error) {
	return psql().
		Insert(ongTableName).
		Columns("nome", "endereco", "email", "senha").
		Values(nome, endereco, types.PlaceholderOngEmail(nome), types.PlaceholderOngPassword).
		Suffix("ON CONFLICT (nome) DO UPDATE SET nome = EXCLUDED.nome RETURNING id").
		ToSql()
}
