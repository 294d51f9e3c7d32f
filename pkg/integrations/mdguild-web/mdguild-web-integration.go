package mdguildweb

import "go.uber.org/zap"

const (
	IntegrationName = "mdguild_web"

	// GuildFlag is the membership token attached to every scraped listing.
	GuildFlag = "mdguild"

	defaultBaseURL = "https://marylandbeer.org/breweries/"
)

type GuildWebIntegration struct {
	logger *zap.Logger

	// BaseURL is the directory page to scrape; overridable for tests.
	BaseURL string
}

func NewGuildWebIntegration(logger *zap.Logger) *GuildWebIntegration {
	return &GuildWebIntegration{logger: logger, BaseURL: defaultBaseURL}
}
