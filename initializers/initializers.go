package initializers

import (
	"context"
	"time"

	"peso-backend/config"
	"peso-backend/fiberlog"
	"peso-backend/lib/analytics"
	"peso-backend/lib/applications"
	xlsexport "peso-backend/lib/export/xls"
	"peso-backend/lib/messenger"
	"peso-backend/lib/notify"
	actioncatalog "peso-backend/lib/pipeline/action-catalog"
	"peso-backend/lib/pipeline/executor"
	"peso-backend/lib/pipeline/resolver"
	stagecatalog "peso-backend/lib/pipeline/stage-catalog"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires every handler in dependency order: config and
// infrastructure first, then the pipeline core, then the consumers.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	actioncatalog.NewHandler()
	stagecatalog.NewHandler()
	notify.NewHandler()
	messenger.NewHandler()
	applications.NewHandler()
	resolver.NewHandler()
	executor.NewHandler(time.Duration(config.Conf.Pipeline.DuplicateWindowInSec) * time.Second)
	analytics.NewHandler()
	xlsexport.NewHandler()
}
