// Package integrations holds the external directory sources that feed the
// membership ingestion path. A source yields transient listings; everything
// downstream (matching, merging) is format-agnostic over this shape.
package integrations

import (
	"go.uber.org/zap"

	mdguildweb "github.com/gchukura/marylandbrewery-sub000/pkg/integrations/mdguild-web"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

// Integration is a scraped directory source.
type Integration interface {
	FetchListings() ([]model.Listing, error)
}

// GetIntegration resolves a configured integration name to its source.
// Unknown names yield nil.
func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == mdguildweb.IntegrationName {
		return mdguildweb.NewGuildWebIntegration(logger)
	}

	return nil
}
