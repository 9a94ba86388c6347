package types

import (
	"strings"
	"time"
)

type Volunteer struct {
	ID           int64     `db:"id" json:"id"`
	Nome         string    `db:"nome" json:"nome"`
	CPF          string    `db:"cpf" json:"cpf"`
	Nascimento   *string   `db:"nascimento" json:"nascimento"`
	Email        *string   `db:"email" json:"email"`
	Telefone     *string   `db:"telefone" json:"telefone"`
	DataCadastro time.Time `db:"data_cadastro" json:"data_cadastro"`
}

const InscriptionStatusPending = "pendente"

type Inscription struct {
	ID             int64     `db:"id" json:"id"`
	VoluntarioID   int64     `db:"voluntario_id" json:"voluntario_id"`
	OportunidadeID int64     `db:"oportunidade_id" json:"oportunidade_id"`
	DataInscricao  time.Time `db:"data_inscricao" json:"data_inscricao"`
	Status         string    `db:"status" json:"status"`
	Mensagem       *string   `db:"mensagem" json:"mensagem"`
}

// VolunteerInscription is one application of a volunteer joined with the
// title of the opportunity it targets.
type VolunteerInscription struct {
	InscricaoID        int64     `db:"inscricao_id" json:"inscricao_id"`
	OportunidadeID     int64     `db:"oportunidade_id" json:"oportunidade_id"`
	OportunidadeTitulo string    `db:"oportunidade_titulo" json:"oportunidade_titulo"`
	DataInscricao      time.Time `db:"data_inscricao" json:"data_inscricao"`
	Status             string    `db:"status" json:"status"`
}

// InscriptionRequest is the body of POST /inscricoes, sent either as JSON
// or as an urlencoded form.
type InscriptionRequest struct {
	Nome           string `json:"nome" form:"nome" validate:"required"`
	Nascimento     string `json:"nascimento" form:"nascimento"`
	CPF            string `json:"cpf" form:"cpf" validate:"required,cpf"`
	Mensagem       string `json:"mensagem" form:"mensagem"`
	OportunidadeID int64  `json:"oportunidade_id" form:"oportunidade_id" validate:"required,gt=0"`
}

// NormalizeCPF keeps only the digits of a CPF, so 123.456.789-09 and
// 12345678909 identify the same volunteer.
func NormalizeCPF(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
}
