package backfillhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextOffset(t *testing.T) {
	t.Run(`updated records leave the filtered set`, func(t *testing.T) {
		require.Equal(t, 0, nextOffset(0, 10, 10, false))
		require.Equal(t, 4, nextOffset(0, 10, 6, false))
		require.Equal(t, 14, nextOffset(4, 10, 0, false))
	})

	t.Run(`dry run advances by the whole page`, func(t *testing.T) {
		require.Equal(t, 10, nextOffset(0, 10, 10, true))
		require.Equal(t, 20, nextOffset(10, 10, 3, true))
	})
}

// Simula a paginação dos jobs que filtram por coluna nula: cada registro
// pendente deve ser visitado exatamente uma vez, e a segunda execução
// completa não atualiza nada.
func TestPaginationOverShrinkingFilter(t *testing.T) {
	type record struct {
		id         int
		resolvable bool
		updated    bool
	}
	records := make([]*record, 0, 23)
	for idx := 0; idx < 23; idx++ {
		records = append(records, &record{id: idx, resolvable: idx%3 != 0})
	}
	pending := func() []*record {
		out := []*record{}
		for _, r := range records {
			if !r.updated {
				out = append(out, r)
			}
		}
		return out
	}
	page := func(list []*record, offset, limit int) []*record {
		if offset >= len(list) {
			return nil
		}
		end := offset + limit
		if end > len(list) {
			end = len(list)
		}
		return list[offset:end]
	}

	runJob := func(batch int) (visited map[int]int, updatedTotal int) {
		visited = map[int]int{}
		offset := 0
		for {
			list := page(pending(), offset, batch)
			if len(list) == 0 {
				return visited, updatedTotal
			}
			updatedInPage := 0
			for _, r := range list {
				visited[r.id]++
				if r.resolvable {
					r.updated = true
					updatedInPage++
					updatedTotal++
				}
			}
			offset = nextOffset(offset, len(list), updatedInPage, false)
		}
	}

	t.Run(`first run visits every pending record once`, func(t *testing.T) {
		visited, updated := runJob(5)
		require.Len(t, visited, len(records))
		for id, count := range visited {
			require.Equal(t, 1, count, "registro %d", id)
		}
		require.Equal(t, 15, updated)
	})

	t.Run(`second run updates nothing`, func(t *testing.T) {
		visited, updated := runJob(5)
		require.Equal(t, 0, updated)
		require.Len(t, visited, 8) // só os não resolvíveis continuam no filtro
	})
}
