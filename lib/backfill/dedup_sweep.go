package backfillhandler

import (
	"context"

	"github.com/pkg/errors"

	"realloc-backend/db"
	deduphandler "realloc-backend/lib/dedup"
	reallocstore "realloc-backend/lib/realloc/store"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/lib/utils/helpers"
	backfillapimodels "realloc-backend/models/api/backfill"
	reallocapimodels "realloc-backend/models/api/realloc"
)

// sweepSummary traduz o resumo do deduplicador para o formato dos jobs:
// as realocações que falharam contam como erro, igual ao dry run.
func sweepSummary(dryRun bool, d reallocapimodels.DedupSummary) backfillapimodels.Summary {
	return backfillapimodels.Summary{
		Job:       backfillapimodels.JobDedupSweep,
		DryRun:    dryRun,
		Processed: d.Processed,
		Updated:   d.Cancelled,
		Errored:   d.Unresolved,
	}
}

// runDedupSweep roda o deduplicador sobre todas as realocações abertas.
// No modo dry run só planeja os cancelamentos, sem tocar nos dados.
func (i impl) runDedupSweep(ctx context.Context, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error) {
	summary := backfillapimodels.Summary{Job: backfillapimodels.JobDedupSweep, DryRun: opts.DryRun}
	batch := i.batchSize(opts)

	if !opts.DryRun {
		dedupSummary, err := deduphandler.Instance.DeduplicateAll(ctx, batch)
		return sweepSummary(false, dedupSummary), err
	}

	logger := i.GetLogger(summary.Job)
	offset := 0
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("job interrompido")
		}
		list, err := reallocstore.NewInstance(db.DB).ListOpen(offset, batch)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		for _, rec := range list {
			if !rec.OpenForTaskMutation() {
				summary.Skipped++
				continue
			}
			tasks, err := taskstore.NewInstance(db.DB).ListByRealloc(rec.ID)
			if err != nil {
				summary.Errored++
				logger.WithError(err).
					WithField("realloc_id", rec.ID).
					Error("erro ao planejar deduplicação, seguindo para a próxima")
				continue
			}
			summary.Processed++
			summary.Updated += len(deduphandler.PlanCancellations(tasks))
		}
		offset += batch
	}
}
