package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/configs"
	"github.com/gchukura/marylandbrewery-sub000/pkg/enrich"
	"github.com/gchukura/marylandbrewery-sub000/pkg/repository"
	"github.com/gchukura/marylandbrewery-sub000/pkg/themes"
)

type DedupCmd struct {
	ConfigFile string `default:".marylandbrewery.toml" help:"Path to config file" short:"c"`
}

func (d *DedupCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(d.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	runner := enrich.NewRunner(repo, repo, themes.DefaultRuleSet(), logger, conf.Enrich.Language, 0)

	summary, err := runner.RunDedup(context.Background())
	if err != nil {
		logger.Error("review dedup aborted", zap.Error(err))

		return err
	}

	logger.Info("review dedup complete",
		zap.Int("reviews", summary.Processed),
		zap.Int("deleted", summary.Deleted),
		zap.Int("failed", summary.Failed))

	return nil
}
