package initializers

import (
	"context"

	"realloc-backend/config"
	"realloc-backend/fiberlog"
	audithandler "realloc-backend/lib/audit"
	backfillhandler "realloc-backend/lib/backfill"
	deduphandler "realloc-backend/lib/dedup"
	xlsexport "realloc-backend/lib/export/xls"
	notifyhandler "realloc-backend/lib/notify"
	statushandler "realloc-backend/lib/status"
	taskhandler "realloc-backend/lib/task"
	taskderivehandler "realloc-backend/lib/task-derive"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	audithandler.NewHandler()
	notifyhandler.NewHandler()
	statushandler.NewHandler()
	deduphandler.NewHandler()
	taskderivehandler.NewHandler()
	taskhandler.NewHandler()
	backfillhandler.NewHandler()
	xlsexport.NewHandler()
}
