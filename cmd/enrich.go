package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/configs"
	"github.com/gchukura/marylandbrewery-sub000/pkg/enrich"
	"github.com/gchukura/marylandbrewery-sub000/pkg/repository"
	"github.com/gchukura/marylandbrewery-sub000/pkg/themes"
)

type EnrichCmd struct {
	ConfigFile string `default:".marylandbrewery.toml" help:"Path to config file" short:"c"`
	Language   string `help:"Override the review language tag to score"`
}

func (e *EnrichCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(e.ConfigFile, logger)
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

	language := conf.Enrich.Language
	if e.Language != "" {
		language = e.Language
	}

	runner := enrich.NewRunner(repo, repo, themes.DefaultRuleSet(), logger, language,
		time.Duration(conf.Enrich.RequestDelayMillis)*time.Millisecond)

	summary, err := runner.Run(context.Background())
	if err != nil {
		logger.Error("enrichment run aborted", zap.Error(err))

		return err
	}

	logger.Info("enrichment complete",
		zap.Int("processed", summary.Processed),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))

	return nil
}
