package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityPatchFields(t *testing.T) {
	t.Run("empty payload has no fields", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.Empty(t, p.Fields())
		assert.False(t, p.Has("titulo"))
	})

	t.Run("only mentioned fields are returned", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"titulo": "New Title"}`), &p))

		assert.Equal(t, map[string]any{"titulo": "New Title"}, p.Fields())
	})

	t.Run("explicit empty and null values are kept", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"perfil_voluntario": "", "num_vagas": null, "status_vaga": "encerrada"}`), &p))

		assert.Equal(t, map[string]any{
			"perfil_voluntario": "",
			"num_vagas":         nil,
			"status_vaga":       "encerrada",
		}, p.Fields())
	})

	t.Run("ong_nome is reported like any other field", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"ong_nome": "EcoMar", "num_vagas": 3}`), &p))

		assert.Equal(t, map[string]any{"ong_nome": "EcoMar", "num_vagas": 3}, p.Fields())
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"ong_id": 7, "titulo = 'x'": "y"}`), &p))

		assert.Empty(t, p.Fields())
	})

	t.Run("keys differing only in case are ignored", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"titulo": "x", "Titulo": null}`), &p))

		assert.NotPanics(t, func() { p.Fields() })
		assert.Equal(t, map[string]any{"titulo": "x"}, p.Fields())
		assert.Empty(t, p.NullViolations())

		require.NoError(t, json.Unmarshal([]byte(`{"TITULO": "y", "STATUS_VAGA": "bogus"}`), &p))
		assert.Nil(t, p.Titulo)
		assert.Nil(t, p.StatusVaga)
		assert.Empty(t, p.Fields())
	})

	t.Run("repeated key keeps the last value", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"titulo": "a", "titulo": null}`), &p))

		assert.Equal(t, map[string]any{"titulo": nil}, p.Fields())
		assert.Equal(t, []string{"titulo"}, p.NullViolations())

		require.NoError(t, json.Unmarshal([]byte(`{"num_vagas": null, "num_vagas": 4}`), &p))
		assert.Equal(t, map[string]any{"num_vagas": 4}, p.Fields())
		assert.Equal(t, 4, *p.NumVagas)
	})

	t.Run("wrong type names the field", func(t *testing.T) {
		var p OpportunityPatch
		err := json.Unmarshal([]byte(`{"num_vagas": "dez"}`), &p)

		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "num_vagas", typeErr.Field)
	})

	t.Run("deref tolerates nil fields", func(t *testing.T) {
		var s *string
		assert.Nil(t, deref(&s))
		assert.Nil(t, deref("not a field"))
	})

	t.Run("null on required column is a violation", func(t *testing.T) {
		var p OpportunityPatch
		require.NoError(t, json.Unmarshal([]byte(`{"titulo": null, "perfil_voluntario": null}`), &p))

		assert.Equal(t, []string{"titulo"}, p.NullViolations())
	})

	t.Run("non-object payload fails", func(t *testing.T) {
		var p OpportunityPatch
		assert.Error(t, json.Unmarshal([]byte(`["titulo"]`), &p))
	})
}

func TestNewOpportunityInputDefaultsStatus(t *testing.T) {
	in := NewOpportunityInput()
	require.NoError(t, json.Unmarshal([]byte(`{"titulo": "Limpeza de praia"}`), in))

	assert.Equal(t, OpportunityStatusActive, in.StatusVaga)
	assert.Equal(t, "Limpeza de praia", in.Titulo)

	in = NewOpportunityInput()
	require.NoError(t, json.Unmarshal([]byte(`{"status_vaga": "inativa"}`), in))
	assert.Equal(t, OpportunityStatusInactive, in.StatusVaga)
}

func TestPlaceholderOngEmail(t *testing.T) {
	assert.Equal(t, "ongjardineirosdofuturo@temp.com", PlaceholderOngEmail("ONG Jardineiros do Futuro"))
	assert.Equal(t, "ecomar@temp.com", PlaceholderOngEmail("EcoMar"))
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678909", NormalizeCPF("123.456.789-09"))
	assert.Equal(t, "12345678909", NormalizeCPF("12345678909"))
}
