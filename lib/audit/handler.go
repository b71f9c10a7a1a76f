package audithandler

import (
	log "github.com/sirupsen/logrus"

	auditstore "realloc-backend/lib/audit/store"
	"realloc-backend/db"
	reallocapimodels "realloc-backend/models/api/realloc"
	dbmodels "realloc-backend/models/db"
)

// Registro de auditoria com semântica de melhor esforço: a falha da escrita
// é logada e engolida, nunca derruba a mutação que a originou. Por isso o
// handler escreve sempre fora da transação principal.
type Provider interface {
	Record(rec dbmodels.AuditEvent)
	ListByRealloc(reallocationID string) ([]reallocapimodels.AuditEventView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) GetLogger(rec dbmodels.AuditEvent) *log.Entry {
	logger := log.
		WithField("entity_type", rec.EntityType).
		WithField("entity_id", rec.EntityID).
		WithField("action", rec.Action)
	return logger
}

func (i impl) Record(rec dbmodels.AuditEvent) {
	_, err := i.store.Create(rec)
	if err != nil {
		i.GetLogger(rec).WithError(err).Error("erro ao gravar evento de auditoria")
	}
}

func (i impl) ListByRealloc(reallocationID string) ([]reallocapimodels.AuditEventView, error) {
	list, err := i.store.ListByRealloc(reallocationID)
	if err != nil {
		return nil, err
	}
	result := make([]reallocapimodels.AuditEventView, 0, len(list))
	for _, rec := range list {
		result = append(result, reallocapimodels.AuditEventConvert(rec))
	}
	return result, nil
}
