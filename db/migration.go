package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "realloc-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("executando migrações")
	if err := DB.AutoMigrate(&dbmodels.SystemAccount{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura SystemAccount")
	}
	if err := DB.AutoMigrate(&dbmodels.Team{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura Team")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Training{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura Training")
	}
	if err := DB.AutoMigrate(&dbmodels.StandardTaskTemplate{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura StandardTaskTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.TrainingRequirement{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura TrainingRequirement")
	}
	if err := DB.AutoMigrate(&dbmodels.ReallocationRequest{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura ReallocationRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeReallocation{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura EmployeeReallocation")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura Task")
	}
	createTaskDedupIndexes()
	if err := DB.AutoMigrate(&dbmodels.AuditEvent{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura AuditEvent")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskStatusEvent{}); err != nil {
		return errors.Wrap(err, "erro ao criar estrutura TaskStatusEvent")
	}
	log.Info("migração executada com sucesso")
	return nil
}

// createTaskDedupIndexes sustenta a chave de deduplicação no banco: no
// máximo uma tarefa PENDENTE por obrigação em cada realocação, o que
// transforma a corrida de derivações concorrentes em violação de chave
// única. Em base legada com duplicatas ainda pendentes a criação falha;
// rode a varredura de deduplicação e migre de novo.
func createTaskDedupIndexes() {
	err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_dedup_training
		ON tasks (reallocation_id, training_id)
		WHERE training_id IS NOT NULL AND status = 'PENDENTE'`).Error
	if err != nil {
		log.WithError(err).Warn("índice de deduplicação por treinamento não criado, há duplicatas pendentes na base")
	}
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_dedup_template
		ON tasks (reallocation_id, sector, type)
		WHERE training_id IS NULL AND status = 'PENDENTE'`).Error
	if err != nil {
		log.WithError(err).Warn("índice de deduplicação por setor e tipo não criado, há duplicatas pendentes na base")
	}
}
