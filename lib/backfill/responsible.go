package backfillhandler

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/db"
	auditstore "realloc-backend/lib/audit/store"
	accountstore "realloc-backend/lib/directory/account-store"
	"realloc-backend/lib/utils/helpers"
	backfillapimodels "realloc-backend/models/api/backfill"
	dbmodels "realloc-backend/models/db"
)

// runResponsible atribui responsável aos registros de auditoria sem essa
// referência: pela matrícula presente no texto livre, com a conta
// administrativa configurada como último recurso.
func (i impl) runResponsible(ctx context.Context, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error) {
	summary := backfillapimodels.Summary{Job: backfillapimodels.JobResponsible, DryRun: opts.DryRun}
	logger := i.GetLogger(summary.Job)
	batch := i.batchSize(opts)
	offset := 0
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("job interrompido")
		}
		list, err := auditstore.NewInstance(db.DB).ListWithoutResponsible(offset, batch)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		updatedInPage := 0
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			for _, ev := range list {
				if opts.Limit > 0 && summary.Processed >= opts.Limit {
					return nil
				}
				summary.Processed++
				updated, err := i.backfillOneResponsible(tx, ev, opts.DryRun, &summary)
				if err != nil {
					summary.Errored++
					logger.WithError(err).
						WithField("audit_event_id", ev.ID).
						Error("erro ao reconciliar responsável, seguindo para o próximo")
					continue
				}
				if updated {
					updatedInPage++
				}
			}
			return nil
		})
		if err != nil {
			return summary, err
		}
		if opts.Limit > 0 && summary.Processed >= opts.Limit {
			return summary, nil
		}
		offset = nextOffset(offset, len(list), updatedInPage, opts.DryRun)
	}
}

func (i impl) backfillOneResponsible(tx *gorm.DB, ev dbmodels.AuditEvent, dryRun bool, summary *backfillapimodels.Summary) (bool, error) {
	accountID := ""
	if badge := helpers.ExtractBadge(ev.Changes.Description); badge != "" {
		account, err := accountstore.NewInstance(tx).GetByEmployeeBadge(badge)
		if err != nil {
			return false, err
		}
		if account != nil {
			accountID = account.ID
		}
	}
	if accountID == "" {
		accountID = i.defaultAccountID
	}
	if accountID == "" {
		summary.Skipped++
		return false, nil
	}
	if dryRun {
		summary.Updated++
		return false, nil
	}
	if err := auditstore.NewInstance(tx).SetResponsible(ev.ID, accountID); err != nil {
		return false, err
	}
	summary.Updated++
	return true, nil
}
