package mdguildweb

import (
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

// MemberScraped is one member card from the guild directory page.
type MemberScraped struct {
	Name    string `selector:"h3.member-name"`
	Website string `attr:"href"               selector:"a.member-website"`
}

// FetchListings scrapes the guild member directory and returns one listing
// per member card, each flagged with the guild token. Extraction stops at the
// boundary: callers get already-parsed listings, never HTML.
func (g *GuildWebIntegration) FetchListings() ([]model.Listing, error) {
	base, err := url.Parse(g.BaseURL)
	if err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
	)

	var (
		errs     error
		listings []model.Listing
	)

	collector.OnHTML("div.member-card", func(element *colly.HTMLElement) {
		scraped := MemberScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			g.logger.Error("failed to unmarshal scraped member", zap.Error(err))

			return
		}

		name := strings.TrimSpace(scraped.Name)
		if name == "" {
			g.logger.Warn("skipping member card without a name", zap.String("url", element.Request.URL.String()))

			return
		}

		listing := model.Listing{Name: name, Flags: []string{GuildFlag}}

		if website := strings.TrimSpace(scraped.Website); website != "" {
			listing.Website = pointy.String(website)
		}

		g.logger.Info("scraped guild member", zap.String("name", name))

		listings = append(listings, listing)
	})

	collector.OnError(func(response *colly.Response, err error) {
		g.logger.Error("error while scraping guild directory", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	multierr.AppendInto(&errs, collector.Visit(g.BaseURL))

	return listings, errs
}
