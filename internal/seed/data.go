package seed

import (
	"tempobemgasto/internal/utils"
	"tempobemgasto/pkg/types"
)

var ongs = []types.Ong{
	{Nome: "EcoMar", Endereco: "Av. Beira Mar, 1200 - Florianópolis/SC"},
	{Nome: "Jardineiros do Futuro", Endereco: "Rua das Flores, 45 - Curitiba/PR"},
	{Nome: "Leitura Para Todos", Endereco: "Praça da Sé, 10 - São Paulo/SP"},
}

var opportunities = []*types.OpportunityInput{
	{
		Titulo:           "Limpeza da Praia da Joaquina",
		Descricao:        "Mutirão de retirada de resíduos da faixa de areia e das dunas.",
		OngNome:          "EcoMar",
		Endereco:         "Praia da Joaquina - Florianópolis/SC",
		DataInicio:       utils.StringPtr("15/11/2026"),
		DataTermino:      utils.StringPtr("15/11/2026"),
		HoraInicio:       utils.StringPtr("08:00"),
		HoraTermino:      utils.StringPtr("12:00"),
		PerfilVoluntario: utils.StringPtr("Disposição para atividades ao ar livre"),
		NumVagas:         utils.IntPtr(40),
		StatusVaga:       types.OpportunityStatusActive,
		TipoAcao:         "Meio ambiente",
	},
	{
		Titulo:      "Monitoramento de tartarugas",
		Descricao:   "Registro de ninhos e orientação de banhistas durante a temporada de desova.",
		OngNome:     "EcoMar",
		Endereco:    "Praia do Santinho - Florianópolis/SC",
		DataInicio:  utils.StringPtr("01/12/2026"),
		DataTermino: utils.StringPtr("28/02/2027"),
		NumVagas:    utils.IntPtr(12),
		StatusVaga:  types.OpportunityStatusEditing,
		TipoAcao:    "Meio ambiente",
	},
	{
		Titulo:           "Horta comunitária",
		Descricao:        "Plantio e manutenção dos canteiros da horta do bairro.",
		OngNome:          "Jardineiros do Futuro",
		Endereco:         "Rua das Flores, 45 - Curitiba/PR",
		HoraInicio:       utils.StringPtr("09:00"),
		HoraTermino:      utils.StringPtr("11:30"),
		PerfilVoluntario: utils.StringPtr("Não é necessária experiência"),
		StatusVaga:       types.OpportunityStatusActive,
		TipoAcao:         "Agricultura urbana",
	},
	{
		Titulo:     "Contação de histórias",
		Descricao:  "Leitura em voz alta para crianças na biblioteca comunitária.",
		OngNome:    "Leitura Para Todos",
		Endereco:   "Praça da Sé, 10 - São Paulo/SP",
		NumVagas:   utils.IntPtr(5),
		StatusVaga: types.OpportunityStatusClosed,
		TipoAcao:   "Educação",
	},
}

var volunteers = []*types.Volunteer{
	{
		Nome:       "Ana Souza",
		CPF:        "123.456.789-09",
		Nascimento: utils.StringPtr("12/04/1994"),
		Email:      utils.StringPtr("ana.souza@example.com"),
		Telefone:   utils.StringPtr("(48) 99999-0001"),
	},
	{
		Nome:  "Bruno Lima",
		CPF:   "98765432100",
		Email: utils.StringPtr("bruno.lima@example.com"),
	},
}

type application struct {
	volunteer *types.Volunteer
	ong       string
	titulo    string
	mensagem  string
}

var applications = []application{
	{volunteer: volunteers[0], ong: "EcoMar", titulo: "Limpeza da Praia da Joaquina", mensagem: "Participo todo ano!"},
	{volunteer: volunteers[0], ong: "Jardineiros do Futuro", titulo: "Horta comunitária"},
	{volunteer: volunteers[1], ong: "EcoMar", titulo: "Limpeza da Praia da Joaquina"},
}
