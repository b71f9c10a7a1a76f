package deduphandler

import (
	"fmt"

	"realloc-backend/lib/utils/textnorm"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

// Key identifica a obrigação real que a tarefa representa. Duas tarefas
// ativas com a mesma chave na mesma realocação são duplicatas.
type Key struct {
	Sector string
	Ref    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s", k.Sector, k.Ref)
}

// KeyFor é a única definição de chave de deduplicação do sistema; tanto o
// caminho ao vivo quanto a varredura em lote passam por aqui. Tarefa de
// treinamento com referência usa o id do treinamento; as demais usam
// (setor, tipo) normalizados.
func KeyFor(t dbmodels.Task) Key {
	if t.Sector == models.SectorTreinamento && t.TrainingID != nil && *t.TrainingID != "" {
		return Key{
			Sector: string(models.SectorTreinamento),
			Ref:    *t.TrainingID,
		}
	}
	return Key{
		Sector: textnorm.Normalize(string(t.Sector)),
		Ref:    textnorm.Normalize(t.Type),
	}
}
