package backfillhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"realloc-backend/config"
	backfillapimodels "realloc-backend/models/api/backfill"
)

// Jobs de reconciliação: rotinas em lote, idempotentes, que reconstroem
// invariantes sobre dados históricos. Cada lote roda na própria
// transação, então um job pode ser interrompido entre lotes sem corromper
// o estado.
type Provider interface {
	Run(ctx context.Context, jobName string, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		defaultAccountID: config.Conf.Backfill.DefaultAccountID,
		defaultBatchSize: config.Conf.Backfill.BatchSize,
	}
}

type impl struct {
	// conta administrativa de fallback para atribuição de responsável,
	// injetada pela configuração
	defaultAccountID string
	defaultBatchSize int
}

func (i impl) GetLogger(jobName string) *log.Entry {
	logger := log.
		WithField("job", jobName)
	return logger
}

func (i impl) batchSize(opts backfillapimodels.RunOptions) int {
	if opts.BatchSize > 0 {
		return opts.BatchSize
	}
	if i.defaultBatchSize > 0 {
		return i.defaultBatchSize
	}
	return 200
}

func (i impl) Run(ctx context.Context, jobName string, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error) {
	if err := opts.Validate(); err != nil {
		return backfillapimodels.Summary{}, err
	}
	logger := i.GetLogger(jobName).
		WithField("dry_run", opts.DryRun)
	logger.Info("job de reconciliação iniciado")

	var summary backfillapimodels.Summary
	var err error
	switch jobName {
	case backfillapimodels.JobApprovalEvents:
		summary, err = i.runApprovalEvents(ctx, opts)
	case backfillapimodels.JobTeamSector:
		summary, err = i.runTeamSector(ctx, opts)
	case backfillapimodels.JobResponsible:
		summary, err = i.runResponsible(ctx, opts)
	case backfillapimodels.JobDedupSweep:
		summary, err = i.runDedupSweep(ctx, opts)
	default:
		return backfillapimodels.Summary{}, errors.Errorf("job de reconciliação desconhecido: %s", jobName)
	}
	if err != nil {
		logger.WithError(err).Error("job de reconciliação interrompido com erro")
		return summary, err
	}
	logger.
		WithField("processed", summary.Processed).
		WithField("created", summary.Created).
		WithField("updated", summary.Updated).
		WithField("skipped", summary.Skipped).
		WithField("errored", summary.Errored).
		Info("job de reconciliação finalizado")
	return summary, nil
}
