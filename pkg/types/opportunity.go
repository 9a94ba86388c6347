package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

type OpportunityStatus string

const (
	OpportunityStatusActive   OpportunityStatus = "ativa"
	OpportunityStatusInactive OpportunityStatus = "inativa"
	OpportunityStatusClosed   OpportunityStatus = "encerrada"
	OpportunityStatusEditing  OpportunityStatus = "em_edicao"
)

// Opportunity is a row of oportunidades joined with the display name of its
// organization.
type Opportunity struct {
	ID               int64             `db:"id" json:"id"`
	DataPublicacao   time.Time         `db:"data_publicacao" json:"data_publicacao"`
	Titulo           string            `db:"titulo" json:"titulo"`
	Descricao        string            `db:"descricao" json:"descricao"`
	OngID            int64             `db:"ong_id" json:"-"`
	OngNome          string            `db:"ong_nome" json:"ong_nome"`
	Endereco         string            `db:"endereco" json:"endereco"`
	DataInicio       *string           `db:"data_inicio" json:"data_inicio"`
	DataTermino      *string           `db:"data_termino" json:"data_termino"`
	HoraInicio       *string           `db:"hora_inicio" json:"hora_inicio"`
	HoraTermino      *string           `db:"hora_termino" json:"hora_termino"`
	PerfilVoluntario *string           `db:"perfil_voluntario" json:"perfil_voluntario"`
	NumVagas         *int              `db:"num_vagas" json:"num_vagas"`
	StatusVaga       OpportunityStatus `db:"status_vaga" json:"status_vaga"`
	TipoAcao         string            `db:"tipo_acao" json:"tipo_acao"`
}

// OpportunityInput is the body of POST and PUT. Dates are DD/MM/YYYY and
// times HH:MM, both kept as plain strings. id and data_publicacao are not
// accepted from clients and are ignored when sent.
type OpportunityInput struct {
	Titulo           string            `json:"titulo" validate:"required"`
	Descricao        string            `json:"descricao" validate:"required"`
	OngNome          string            `json:"ong_nome" validate:"required"`
	Endereco         string            `json:"endereco" validate:"required"`
	DataInicio       *string           `json:"data_inicio"`
	DataTermino      *string           `json:"data_termino"`
	HoraInicio       *string           `json:"hora_inicio"`
	HoraTermino      *string           `json:"hora_termino"`
	PerfilVoluntario *string           `json:"perfil_voluntario"`
	NumVagas         *int              `json:"num_vagas" validate:"omitnil,gte=0"`
	StatusVaga       OpportunityStatus `json:"status_vaga" validate:"required,oneof=ativa inativa encerrada em_edicao"`
	TipoAcao         string            `json:"tipo_acao" validate:"required"`
}

// NewOpportunityInput returns an input carrying the defaults for fields a
// client may omit. Decode the request body on top of it.
func NewOpportunityInput() *OpportunityInput {
	return &OpportunityInput{StatusVaga: OpportunityStatusActive}
}

// OpportunityPatch is the body of PATCH. Besides the decoded values it
// remembers which keys were present in the payload, so that a field sent
// as null or "" can be told apart from a field that was never mentioned.
type OpportunityPatch struct {
	Titulo           *string            `json:"titulo"`
	Descricao        *string            `json:"descricao"`
	Endereco         *string            `json:"endereco"`
	DataInicio       *string            `json:"data_inicio"`
	DataTermino      *string            `json:"data_termino"`
	HoraInicio       *string            `json:"hora_inicio"`
	HoraTermino      *string            `json:"hora_termino"`
	PerfilVoluntario *string            `json:"perfil_voluntario"`
	NumVagas         *int               `json:"num_vagas" validate:"omitnil,gte=0"`
	StatusVaga       *OpportunityStatus `json:"status_vaga" validate:"omitnil,oneof=ativa inativa encerrada em_edicao"`
	TipoAcao         *string            `json:"tipo_acao"`

	// OngNome is accepted for compatibility with clients that send the full
	// form, but it has no column on oportunidades.
	OngNome *string `json:"ong_nome"`

	// json key -> sent as null
	present map[string]bool
}

// notNullFields cannot be patched to null.
var notNullFields = []string{"titulo", "descricao", "endereco", "status_vaga", "tipo_acao"}

// UnmarshalJSON decodes only the exact, lower-case field names. Keys are
// matched case-sensitively, so a key that differs only in case is ignored
// rather than silently filling a field. When a key repeats, the last value
// wins.
func (p *OpportunityPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = OpportunityPatch{present: make(map[string]bool, len(raw))}
	targets := p.targets()

	for key, value := range raw {
		target, ok := targets[key]
		if !ok {
			continue
		}

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			p.present[key] = true
			continue
		}

		if err := json.Unmarshal(value, target); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				typeErr.Field = key
			}
			return err
		}
		p.present[key] = false
	}

	return nil
}

// targets maps every accepted json key to the field it decodes into.
func (p *OpportunityPatch) targets() map[string]any {
	return map[string]any{
		"titulo":            &p.Titulo,
		"descricao":         &p.Descricao,
		"endereco":          &p.Endereco,
		"data_inicio":       &p.DataInicio,
		"data_termino":      &p.DataTermino,
		"hora_inicio":       &p.HoraInicio,
		"hora_termino":      &p.HoraTermino,
		"perfil_voluntario": &p.PerfilVoluntario,
		"num_vagas":         &p.NumVagas,
		"status_vaga":       &p.StatusVaga,
		"tipo_acao":         &p.TipoAcao,
		"ong_nome":          &p.OngNome,
	}
}

// Has reports whether the payload mentioned field, whatever its value.
func (p *OpportunityPatch) Has(field string) bool {
	_, ok := p.present[field]
	return ok
}

// NullViolations lists fields sent as null that the table requires.
func (p *OpportunityPatch) NullViolations() []string {
	var out []string
	for _, f := range notNullFields {
		if isNull, ok := p.present[f]; ok && isNull {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns the value of every known field present in the payload,
// keyed by its json name. Values sent as null map to nil.
func (p *OpportunityPatch) Fields() map[string]any {
	out := make(map[string]any, len(p.present))
	for field, target := range p.targets() {
		isNull, ok := p.present[field]
		if !ok {
			continue
		}
		if isNull {
			out[field] = nil
			continue
		}
		out[field] = deref(target)
	}

	return out
}

// deref unwraps a pointer to one of the patch fields. A nil value maps to
// nil.
func deref(v any) any {
	switch t := v.(type) {
	case **string:
		if *t == nil {
			return nil
		}
		return **t
	case **int:
		if *t == nil {
			return nil
		}
		return **t
	case **OpportunityStatus:
		if *t == nil {
			return nil
		}
		return string(**t)
	}
	return nil
}

// OpportunityWriteResult is the body returned by PUT and PATCH.
type OpportunityWriteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreatedResult is the body returned by the create endpoints.
type CreatedResult struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// WriteOutcome tells a successful update apart by what it did.
type WriteOutcome int

const (
	// WriteApplied means at least one row was updated.
	WriteApplied WriteOutcome = iota + 1
	// WriteUnchanged means the statement ran and affected no rows.
	WriteUnchanged
	// WriteSkipped means there was nothing to write and no statement ran.
	WriteSkipped
)
