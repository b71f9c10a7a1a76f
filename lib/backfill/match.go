package backfillhandler

import (
	"regexp"
	"sort"
	"strings"

	"realloc-backend/lib/utils/keyword"
	"realloc-backend/lib/utils/textnorm"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

// Tabelas de classificação dos registros históricos. A ordem importa: a
// primeira regra que casa vence.
var outcomeRules = keyword.NewClassifier[models.TaskStatus]().
	Add(models.TaskStatusCancelada, "REPROV", "REJEIT", "RECUS", "INVALID").
	Add(models.TaskStatusConcluida, "APROV", "VALID", "CONCLU")

var sectorRules = keyword.NewClassifier[models.Sector]().
	Add(models.SectorMedicina, "ASO", "EXAME", "MEDIC").
	Add(models.SectorTreinamento, "REGRAS", "INTEGRACAO", "TREIN").
	Add(models.SectorRH, "CTPS", "ADMISS")

// ClassifyOutcome decide se o texto livre descreve aprovação ou rejeição
// de uma tarefa.
func ClassifyOutcome(text string) (models.TaskStatus, bool) {
	return outcomeRules.Classify(text)
}

func GuessSector(text string) (models.Sector, bool) {
	return sectorRules.Classify(text)
}

var quotedFragment = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

// ExtractTaskFragment devolve o trecho do texto com maior chance de ser o
// nome da tarefa: conteúdo entre aspas, senão o que segue a palavra
// TAREFA, senão o texto inteiro.
func ExtractTaskFragment(text string) string {
	if m := quotedFragment.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}
	normalized := textnorm.Normalize(text)
	if idx := strings.Index(normalized, "TAREFA "); idx >= 0 {
		return normalized[idx+len("TAREFA "):]
	}
	return text
}

func taskLabel(t dbmodels.Task) string {
	if t.Training != nil && t.Training.Name != "" {
		return t.Training.Name
	}
	return t.Type
}

// ResolveTask localiza, entre as tarefas candidatas da mesma realocação, a
// que o texto histórico referencia: primeiro por casamento difuso do
// fragmento do nome, depois pelo palpite de setor. Quando mais de uma
// candidata casa igualmente bem, vale a primeira na ordem setor, descrição
// e id — precedência assumida na falta de regra de produto documentada.
func ResolveTask(text string, candidates []dbmodels.Task) (*dbmodels.Task, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	ordered := make([]dbmodels.Task, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a].Sector != ordered[b].Sector {
			return ordered[a].Sector < ordered[b].Sector
		}
		la, lb := taskLabel(ordered[a]), taskLabel(ordered[b])
		if la != lb {
			return la < lb
		}
		return ordered[a].ID < ordered[b].ID
	})

	fragment := ExtractTaskFragment(text)
	for idx := range ordered {
		if textnorm.ContainsEitherWay(taskLabel(ordered[idx]), fragment) {
			return &ordered[idx], true
		}
	}

	if sector, ok := GuessSector(text); ok {
		for idx := range ordered {
			if ordered[idx].Sector == sector {
				return &ordered[idx], true
			}
		}
	}
	return nil, false
}
