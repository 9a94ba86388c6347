package types

import "errors"

var (
	ErrOpportunityNotFound = errors.New("Oportunidade não encontrada")
	ErrVolunteerNotFound   = errors.New("Voluntário não encontrado")
	ErrAlreadyEnrolled     = errors.New("Voluntário já inscrito nesta oportunidade")

	// ErrOngNotResolved means the organization upsert neither returned an id
	// nor left a row that could be found by name afterwards.
	ErrOngNotResolved = errors.New("Erro interno: Não foi possível obter ID da ONG ou criar ONG padrão.")
)
