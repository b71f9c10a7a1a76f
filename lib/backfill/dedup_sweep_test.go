package backfillhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	backfillapimodels "realloc-backend/models/api/backfill"
	reallocapimodels "realloc-backend/models/api/realloc"
)

func TestSweepSummary(t *testing.T) {
	t.Run(`unresolved reallocations count as errors`, func(t *testing.T) {
		got := sweepSummary(false, reallocapimodels.DedupSummary{
			Processed:  12,
			Cancelled:  4,
			Unresolved: 2,
		})
		require.Equal(t, backfillapimodels.Summary{
			Job:       backfillapimodels.JobDedupSweep,
			Processed: 12,
			Updated:   4,
			Errored:   2,
		}, got)
	})

	t.Run(`dry run flag is carried through`, func(t *testing.T) {
		got := sweepSummary(true, reallocapimodels.DedupSummary{Processed: 3})
		require.True(t, got.DryRun)
		require.Equal(t, 3, got.Processed)
	})
}
