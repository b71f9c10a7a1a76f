package notifyhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"realloc-backend/config"
	"realloc-backend/db"
	reallocrequeststore "realloc-backend/lib/realloc-request/store"
	reallocstore "realloc-backend/lib/realloc/store"
	"realloc-backend/lib/smtp"
)

// Avisos por e-mail ao solicitante. Melhor esforço: falhas são logadas e
// engolidas, como nos eventos de auditoria.
type Provider interface {
	ReallocReady(reallocationID string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		reallocStore: reallocstore.NewInstance(db.DB),
		requestStore: reallocrequeststore.NewInstance(db.DB),
	}
}

type impl struct {
	reallocStore reallocstore.Provider
	requestStore reallocrequeststore.Provider
}

func (i impl) GetLogger(reallocationID string) *log.Entry {
	logger := log.
		WithField("realloc_id", reallocationID)
	return logger
}

func (i impl) ReallocReady(reallocationID string) {
	logger := i.GetLogger(reallocationID)
	rec, err := i.reallocStore.GetByID(reallocationID)
	if err != nil || rec == nil {
		logger.WithError(err).Error("aviso de prontidão não enviado, erro ao carregar realocação")
		return
	}
	request, err := i.requestStore.GetByID(rec.RequestID)
	if err != nil || request == nil {
		logger.WithError(err).Error("aviso de prontidão não enviado, erro ao carregar solicitação")
		return
	}
	if request.Requester == nil || request.Requester.Account == nil || request.Requester.Account.Email == "" {
		logger.Warn("aviso de prontidão não enviado, solicitante sem e-mail vinculado")
		return
	}
	employeeName := rec.EmployeeID
	if rec.Employee != nil {
		employeeName = rec.Employee.Name
	}
	message := fmt.Sprintf("Todas as pendências da realocação do funcionário %s foram resolvidas. A realocação está pronta para submissão no Prestserv.", employeeName)
	err = smtp.Instance.SendEMail(config.Conf.Smtp.NotifyFrom, request.Requester.Account.Email, message, "Realocação pronta para submissão")
	if err != nil {
		logger.WithError(err).Error("erro ao enviar aviso de prontidão")
	}
}
