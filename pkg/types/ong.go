package types

import (
	"fmt"
	"strings"
)

type Ong struct {
	ID       int64  `db:"id" json:"id"`
	Nome     string `db:"nome" json:"nome"`
	Endereco string `db:"endereco" json:"endereco"`
	Email    string `db:"email" json:"email"`
	Senha    string `db:"senha" json:"-"`
}

// PlaceholderOngPassword is stored for organizations created implicitly by
// an opportunity. Those rows never authenticate.
const PlaceholderOngPassword = "temp_pass"

// PlaceholderOngEmail derives the email stored for an implicitly created
// organization: the lowercased name without spaces at temp.com.
func PlaceholderOngEmail(nome string) string {
	return fmt.Sprintf("%s@temp.com", strings.ReplaceAll(strings.ToLower(nome), " ", ""))
}
