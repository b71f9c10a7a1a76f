package taskderivehandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realloc-backend/db"
	audithandler "realloc-backend/lib/audit"
	policystore "realloc-backend/lib/policy/store"
	reallocrequeststore "realloc-backend/lib/realloc-request/store"
	reallocstore "realloc-backend/lib/realloc/store"
	statushandler "realloc-backend/lib/status"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/lib/utils/helpers"
	"realloc-backend/models"
	reallocapimodels "realloc-backend/models/api/realloc"
	dbmodels "realloc-backend/models/db"
)

// Derivador de tarefas: calcula e insere as tarefas que a política exige
// para cada realocação aberta. Idempotente por construção: reexecutar com
// a mesma política não cria nada.
type Provider interface {
	DeriveForRealloc(reallocationID string, sectors []models.Sector) (reallocapimodels.DeriveSummary, error)
	DeriveForOpen(ctx context.Context, sectors []models.Sector) (reallocapimodels.DeriveSummary, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) GetLogger(reallocationID string) *log.Entry {
	logger := log.
		WithField("realloc_id", reallocationID)
	return logger
}

func allSectors() []models.Sector {
	return []models.Sector{models.SectorRH, models.SectorMedicina, models.SectorTreinamento}
}

func (i impl) DeriveForRealloc(reallocationID string, sectors []models.Sector) (reallocapimodels.DeriveSummary, error) {
	summary := reallocapimodels.DeriveSummary{SectorsTouched: []models.Sector{}}
	rec, err := reallocstore.NewInstance(db.DB).GetByID(reallocationID)
	if err != nil {
		return summary, err
	}
	if rec == nil {
		return summary, errors.New("realocação não encontrada")
	}
	created, touched, err := i.deriveOne(*rec, sectors)
	if err != nil {
		return summary, err
	}
	summary.Processed = 1
	summary.Created = created
	summary.SectorsTouched = touched
	return summary, nil
}

// deriveOne cria as tarefas de uma realocação numa única transação, junto
// com o recálculo do status. A auditoria resume a derivação num evento só
// por realocação, para manter a trilha legível.
func (i impl) deriveOne(rec dbmodels.EmployeeReallocation, sectors []models.Sector) (created int, touched []models.Sector, err error) {
	touched = []models.Sector{}
	if !rec.OpenForTaskMutation() {
		return 0, touched, nil
	}
	if len(sectors) == 0 {
		sectors = allSectors()
	}

	logger := i.GetLogger(rec.ID)
	request := rec.Request
	if request == nil {
		request, err = reallocrequeststore.NewInstance(db.DB).GetByID(rec.RequestID)
		if err != nil {
			return 0, touched, err
		}
		if request == nil {
			return 0, touched, errors.New("solicitação de realocação não encontrada")
		}
	}
	employeeRole := ""
	if rec.Employee != nil {
		employeeRole = rec.Employee.Role
	}

	var previous, current models.ReallocTaskStatus
	var changed bool
	previous = rec.TaskStatus
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := taskstore.NewInstance(tx).ListByRealloc(rec.ID)
		if err != nil {
			return err
		}

		policy := policystore.NewInstance(tx)
		in := PlanInput{
			Existing: existing,
			Priority: models.MapRequestPriority(request.Priority),
		}
		for _, sector := range sectors {
			if sector == models.SectorTreinamento {
				// falha de consulta da política pula só este item,
				// os demais setores seguem
				trainings, err := policy.ListMandatoryTrainings(request.DestinationContractID, employeeRole)
				if err != nil {
					logger.WithError(err).Error("erro ao consultar matriz de treinamentos, setor ignorado nesta derivação")
					continue
				}
				in.Trainings = trainings
				continue
			}
			templates, err := policy.ListActiveTemplates(sector)
			if err != nil {
				logger.WithError(err).WithField("sector", sector).Error("erro ao consultar tarefas padrão, setor ignorado nesta derivação")
				continue
			}
			in.Templates = append(in.Templates, templates...)
		}

		plan := BuildPlan(rec.ID, in)
		if len(plan) > 0 {
			err = taskstore.NewInstance(tx).CreateBatch(plan)
			if err != nil {
				// corrida de inserção concorrente na mesma chave:
				// tratar como "já existe"
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					logger.WithError(err).Warn("inserção concorrente detectada na derivação, tarefas já existem")
					plan = nil
				} else {
					return err
				}
			}
		}
		created = len(plan)
		sectorSet := map[models.Sector]bool{}
		for _, t := range plan {
			if !sectorSet[t.Sector] {
				sectorSet[t.Sector] = true
				touched = append(touched, t.Sector)
			}
		}

		current, changed, err = statushandler.Instance.RecomputeTx(tx, rec)
		return err
	})
	if err != nil {
		return 0, []models.Sector{}, err
	}

	if created > 0 {
		audithandler.Instance.Record(dbmodels.AuditEvent{
			Action:     models.AuditActionCreate,
			EntityType: models.EntityEmployeeReallocation,
			EntityID:   rec.ID,
			Changes: dbmodels.EntityChanges{
				Description: fmt.Sprintf("derivação de política criou %d tarefa(s) nos setores %v", created, touched),
			},
			RequestID:      &rec.RequestID,
			ReallocationID: &rec.ID,
		})
	}
	if changed {
		statushandler.Instance.NotifyChange(rec, previous, current)
	}
	return created, touched, nil
}

// DeriveForOpen roda a derivação sobre todas as realocações abertas, em
// lotes. O erro de uma realocação é contado e não interrompe as demais.
func (i impl) DeriveForOpen(ctx context.Context, sectors []models.Sector) (reallocapimodels.DeriveSummary, error) {
	summary := reallocapimodels.DeriveSummary{SectorsTouched: []models.Sector{}}
	batchSize := 100
	offset := 0
	touchedSet := map[models.Sector]bool{}
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("derivação em lote interrompida")
		}
		list, err := reallocstore.NewInstance(db.DB).ListOpen(offset, batchSize)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		for _, rec := range list {
			created, touched, err := i.deriveOne(rec, sectors)
			if err != nil {
				summary.Errored++
				i.GetLogger(rec.ID).WithError(err).Error("erro ao derivar tarefas, seguindo para a próxima realocação")
				continue
			}
			summary.Processed++
			summary.Created += created
			for _, s := range touched {
				if !touchedSet[s] {
					touchedSet[s] = true
					summary.SectorsTouched = append(summary.SectorsTouched, s)
				}
			}
		}
		offset += batchSize
	}
}
