package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const opportunityTableName = "oportunidades"

var opportunitySelectColumns = []string{
	"o.id",
	"o.data_publicacao",
	"o.titulo",
	"o.descricao",
	"o.ong_id",
	"ongs.nome AS ong_nome",
	"o.endereco",
	"o.data_inicio",
	"o.data_termino",
	"o.hora_inicio",
	"o.hora_termino",
	"o.perfil_voluntario",
	"o.num_vagas",
	"o.status_vaga",
	"o.tipo_acao",
}

// opportunityWritableColumns is the only source of column names for
// updates. Keys are the json field names clients send.
var opportunityWritableColumns = map[string]string{
	"titulo":            "titulo",
	"descricao":         "descricao",
	"endereco":          "endereco",
	"data_inicio":       "data_inicio",
	"data_termino":      "data_termino",
	"hora_inicio":       "hora_inicio",
	"hora_termino":      "hora_termino",
	"perfil_voluntario": "perfil_voluntario",
	"num_vagas":         "num_vagas",
	"status_vaga":       "status_vaga",
	"tipo_acao":         "tipo_acao",
}

type OpportunityRepository struct {
	pool *pgxpool.Pool
}

func NewOpportunityRepository(pool *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{pool: pool}
}

func selectOpportunities() sq.SelectBuilder {
	return psql().
		Select(opportunitySelectColumns...).
		From(opportunityTableName + " o").
		Join("ongs ON o.ong_id = ongs.id")
}

func (r *OpportunityRepository) Opportunities(ctx context.Context) ([]*types.Opportunity, error) {
	query, args, err := selectOpportunities().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate opportunities query: %w", err)
	}

	opportunities := make([]*types.Opportunity, 0)
	err = pgxscan.Select(ctx, r.pool, &opportunities, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opportunities: %w", err)
	}

	return opportunities, nil
}

func (r *OpportunityRepository) Opportunity(ctx context.Context, id int64) (*types.Opportunity, error) {
	query, args, err := selectOpportunities().
		Where(sq.Eq{"o.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate opportunity query: %w", err)
	}

	var opportunity = new(types.Opportunity)
	err = pgxscan.Get(ctx, r.pool, opportunity, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, fmt.Errorf("failed to fetch opportunity %d: %w", id, err)
	}

	if err != nil {
		return nil, types.ErrOpportunityNotFound
	}

	return opportunity, nil
}

// CreateOpportunity resolves the owning organization by name, creating it
// if needed, and inserts the opportunity in the same transaction.
func (r *OpportunityRepository) CreateOpportunity(ctx context.Context, in *types.OpportunityInput) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	ongID, err := resolveOngID(ctx, tx, in.OngNome, in.Endereco)
	if err != nil {
		return 0, err
	}

	query, args, err := opportunityInsertQuery(ongID, in, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert opportunity query: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create opportunity: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// ReplaceOpportunity overwrites every writable column. The owning
// organization never changes.
func (r *OpportunityRepository) ReplaceOpportunity(ctx context.Context, id int64, in *types.OpportunityInput) (types.WriteOutcome, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := lockOpportunity(ctx, tx, id); err != nil {
		return 0, err
	}

	query, args, err := opportunityReplaceQuery(id, in)
	if err != nil {
		return 0, fmt.Errorf("failed to generate update opportunity query for opportunity %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update opportunity %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.WriteUnchanged, nil
	}

	return types.WriteApplied, nil
}

// PatchOpportunity updates only the columns named in changes. Use
// OpportunityChanges to build changes from a request payload.
func (r *OpportunityRepository) PatchOpportunity(ctx context.Context, id int64, changes map[string]any) (types.WriteOutcome, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := lockOpportunity(ctx, tx, id); err != nil {
		return 0, err
	}

	if len(changes) == 0 {
		return types.WriteSkipped, nil
	}

	query, args, err := opportunityPatchQuery(id, changes)
	if err != nil {
		return 0, fmt.Errorf("failed to generate patch opportunity query for opportunity %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to patch opportunity %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.WriteUnchanged, nil
	}

	return types.WriteApplied, nil
}

func (r *OpportunityRepository) DeleteOpportunity(ctx context.Context, id int64) error {
	query, args, err := psql().Delete(opportunityTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete opportunity query for opportunity %d: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrOpportunityNotFound
	}

	return nil
}

// OpportunityChanges keeps the fields that map to a writable column and
// returns the names of the ones it dropped, sorted.
func OpportunityChanges(fields map[string]any) (map[string]any, []string) {
	changes := make(map[string]any, len(fields))
	dropped := make([]string, 0)
	for field, value := range fields {
		column, ok := opportunityWritableColumns[field]
		if !ok {
			dropped = append(dropped, field)
			continue
		}
		changes[column] = value
	}
	sort.Strings(dropped)

	return changes, dropped
}

// lockOpportunity checks that the row exists and holds it until the
// transaction ends, so 0 rows affected afterwards never means "missing".
func lockOpportunity(ctx context.Context, tx pgx.Tx, id int64) error {
	query, args, err := psql().
		Select("id").
		From(opportunityTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate opportunity lookup query: %w", err)
	}

	var found int64
	err = tx.QueryRow(ctx, query, args...).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.ErrOpportunityNotFound
	}

	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to look up opportunity %d", id))
}

func opportunityInsertQuery(ongID int64, in *types.OpportunityInput, publishedAt time.Time) (string, []any, error) {
	values := opportunityInputMap(in)
	values["ong_id"] = ongID
	values["data_publicacao"] = publishedAt

	return psql().
		Insert(opportunityTableName).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
}

func opportunityReplaceQuery(id int64, in *types.OpportunityInput) (string, []any, error) {
	return psql().
		Update(opportunityTableName).
		SetMap(opportunityInputMap(in)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func opportunityPatchQuery(id int64, changes map[string]any) (string, []any, error) {
	for column := range changes {
		if _, ok := opportunityWritableColumns[column]; !ok {
			return "", nil, fmt.Errorf("column %q is not writable", column)
		}
	}

	return psql().
		Update(opportunityTableName).
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func opportunityInputMap(in *types.OpportunityInput) map[string]any {
	return map[string]any{
		"titulo":            in.Titulo,
		"descricao":         in.Descricao,
		"endereco":          in.Endereco,
		"data_inicio":       in.DataInicio,
		"data_termino":      in.DataTermino,
		"hora_inicio":       in.HoraInicio,
		"hora_termino":      in.HoraTermino,
		"perfil_voluntario": in.PerfilVoluntario,
		"num_vagas":         in.NumVagas,
		"status_vaga":       string(in.StatusVaga),
		"tipo_acao":         in.TipoAcao,
	}
}
