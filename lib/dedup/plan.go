package deduphandler

import (
	"sort"

	dbmodels "realloc-backend/models/db"
)

// Cancellation é a decisão de cancelar uma tarefa duplicada em favor da
// sobrevivente.
type Cancellation struct {
	Task     dbmodels.Task
	Survivor dbmodels.Task
	Key      Key
}

// PlanCancellations agrupa as tarefas de uma realocação por chave de
// deduplicação e decide os cancelamentos. Tarefas terminais nunca são
// tocadas; num grupo só de terminais nada acontece. A sobrevivente é a
// ativa mais antiga por data de criação, com desempate determinístico
// pelo id.
func PlanCancellations(tasks []dbmodels.Task) []Cancellation {
	groups := map[Key][]dbmodels.Task{}
	order := []Key{}
	for _, t := range tasks {
		if t.Status.IsTerminal() {
			continue
		}
		k := KeyFor(t)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	result := []Cancellation{}
	for _, k := range order {
		active := groups[k]
		if len(active) < 2 {
			continue
		}
		sort.Slice(active, func(a, b int) bool {
			if active[a].CreatedAt.Equal(active[b].CreatedAt) {
				return active[a].ID < active[b].ID
			}
			return active[a].CreatedAt.Before(active[b].CreatedAt)
		})
		survivor := active[0]
		for _, t := range active[1:] {
			result = append(result, Cancellation{
				Task:     t,
				Survivor: survivor,
				Key:      k,
			})
		}
	}
	return result
}
