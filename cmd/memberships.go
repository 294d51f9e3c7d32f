package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/configs"
	"github.com/gchukura/marylandbrewery-sub000/pkg/enrich"
	"github.com/gchukura/marylandbrewery-sub000/pkg/integrations"
	"github.com/gchukura/marylandbrewery-sub000/pkg/repository"
	"github.com/gchukura/marylandbrewery-sub000/pkg/themes"
)

type MembershipsCmd struct {
	ConfigFile string `default:".marylandbrewery.toml" help:"Path to config file" short:"c"`
}

func (m *MembershipsCmd) Run(cmdCtx *Context) error {
	logger := newLogger(cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
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

	runner := enrich.NewRunner(repo, repo, themes.DefaultRuleSet(), logger, conf.Enrich.Language,
		time.Duration(conf.Enrich.RequestDelayMillis)*time.Millisecond)

	for _, name := range conf.Integrations.Listings {
		integration := integrations.GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown listing integration", zap.String("integration", name))

			continue
		}

		summary, err := runner.RunMemberships(context.Background(), integration)
		if err != nil {
			logger.Error("membership sync failed", zap.String("integration", name), zap.Error(err))

			continue
		}

		logger.Info("membership sync complete",
			zap.String("integration", name),
			zap.Int("processed", summary.Processed),
			zap.Int("updated", summary.Updated),
			zap.Int("skipped", summary.Skipped),
			zap.Int("unmatched", summary.Unmatched),
			zap.Int("failed", summary.Failed))
	}

	return nil
}
