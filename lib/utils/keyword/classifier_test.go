package keyword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier(t *testing.T) {
	c := NewClassifier[string]().
		Add("MEDICINA", "ASO", "EXAME", "MEDIC").
		Add("TREINAMENTO", "REGRAS", "INTEGRACAO", "TREIN").
		Add("RH", "CTPS", "ADMISS")

	t.Run(`match by normalized substring`, func(t *testing.T) {
		got, ok := c.Classify("Integração de segurança reprovada")
		require.True(t, ok)
		require.Equal(t, "TREINAMENTO", got)

		got, ok = c.Classify("atualização de ctps pendente")
		require.True(t, ok)
		require.Equal(t, "RH", got)
	})

	t.Run(`first rule wins`, func(t *testing.T) {
		// "EXAME ADMISSIONAL" casa com MEDICINA (EXAME) antes de RH (ADMISS).
		got, ok := c.Classify("exame admissional")
		require.True(t, ok)
		require.Equal(t, "MEDICINA", got)
	})

	t.Run(`no rule`, func(t *testing.T) {
		_, ok := c.Classify("texto sem relação")
		require.False(t, ok)
		_, ok = c.Classify("")
		require.False(t, ok)
	})
}
