package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run(`strip accents and fold case`, func(t *testing.T) {
		require.Equal(t, "INTEGRACAO DE SEGURANCA", Normalize("Integração de Segurança"))
		require.Equal(t, "ASO DE MUDANCA DE FUNCAO", Normalize("aso de mudança de função"))
	})

	t.Run(`collapse whitespace`, func(t *testing.T) {
		require.Equal(t, "TERMO DE TRANSFERENCIA", Normalize("  termo   de\ttransferência "))
		require.Equal(t, "", Normalize("   "))
	})
}

func TestContainsEitherWay(t *testing.T) {
	t.Run(`substring in both directions`, func(t *testing.T) {
		require.True(t, ContainsEitherWay("Exame periódico", "tarefa EXAME PERIODICO reprovada"))
		require.True(t, ContainsEitherWay("tarefa EXAME PERIODICO reprovada", "Exame periódico"))
	})

	t.Run(`no match`, func(t *testing.T) {
		require.False(t, ContainsEitherWay("CTPS", "exame admissional"))
	})

	t.Run(`empty never matches`, func(t *testing.T) {
		require.False(t, ContainsEitherWay("", "qualquer coisa"))
		require.False(t, ContainsEitherWay("qualquer coisa", "  "))
	})
}
