package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Enrich      EnrichCmd      `cmd:"" default:"1"                                             help:"Enrich breweries from review text"`
	Memberships MembershipsCmd `cmd:"" help:"Sync membership badges from external directories"`
	Dedup       DedupCmd       `cmd:"" help:"Remove duplicate review rows"`
	Migrate     MigrateCmd     `cmd:"" help:"Run database migrations"`
}

func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true
	}

	logger, _ := logConfig.Build()

	return logger
}
