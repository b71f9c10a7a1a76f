package backfillapimodels

import (
	"github.com/pkg/errors"
)

const (
	JobApprovalEvents = "approval_events"
	JobTeamSector     = "team_sector"
	JobResponsible    = "responsible"
	JobDedupSweep     = "dedup_sweep"
)

type RunOptions struct {
	DryRun    bool `json:"dry_run"`
	BatchSize int  `json:"batch_size"` // 0 = valor da configuração
	Limit     int  `json:"limit"`      // 0 = sem limite
}

func (o RunOptions) Validate() error {
	if o.BatchSize < 0 {
		return errors.New("batch_size não pode ser negativo")
	}
	if o.Limit < 0 {
		return errors.New("limit não pode ser negativo")
	}
	return nil
}

// Summary é o resumo estruturado de uma execução de job de reconciliação.
type Summary struct {
	Job       string `json:"job"`
	DryRun    bool   `json:"dry_run"`
	Processed int    `json:"processed"`
	Created   int    `json:"created"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Errored   int    `json:"errored"`
}
