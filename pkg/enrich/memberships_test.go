package enrich_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

type fakeListings struct {
	listings []model.Listing
	err      error
}

func (f *fakeListings) FetchListings() ([]model.Listing, error) {
	return f.listings, f.err
}

func guildListing(name string, website *string) model.Listing {
	return model.Listing{Name: name, Website: website, Flags: []string{"mdguild"}}
}

func TestRunMemberships_MatchesAndAppendsBadge(t *testing.T) {
	store := newFakeStore(brewery(1, "Heavy Seas Brewing"))
	listings := &fakeListings{listings: []model.Listing{
		guildListing("Heavy Seas Brewing Company", nil),
	}}

	runner := newRunner(store, zaptest.NewLogger(t))

	summary, err := runner.RunMemberships(context.Background(), listings)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Zero(t, summary.Unmatched)

	require.Len(t, store.addedBadges, 1)
	assert.Equal(t, uint(1), store.addedBadges[0].BreweryID)
	assert.Equal(t, "Brewers Association of Maryland", store.addedBadges[0].Name)
}

func TestRunMemberships_WebsiteTierResolvesRenamedBrewery(t *testing.T) {
	renamed := brewery(1, "Totally New Name")
	renamed.Website = pointy.String("hsbeer.com")

	store := newFakeStore(renamed)
	listings := &fakeListings{listings: []model.Listing{
		guildListing("Heavy Seas Beer", pointy.String("https://www.hsbeer.com/")),
	}}

	runner := newRunner(store, zaptest.NewLogger(t))

	summary, err := runner.RunMemberships(context.Background(), listings)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	require.Len(t, store.addedBadges, 1)
}

func TestRunMemberships_UnmatchedIsCountedNotFailed(t *testing.T) {
	store := newFakeStore(brewery(1, "Heavy Seas Brewing"))
	listings := &fakeListings{listings: []model.Listing{
		guildListing("Some Virginia Brewery", nil),
	}}

	core, logs := observer.New(zap.InfoLevel)
	runner := newRunner(store, zap.New(core))

	summary, err := runner.RunMemberships(context.Background(), listings)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unmatched)
	assert.Zero(t, summary.Failed)
	assert.Empty(t, store.addedBadges)
	assert.Len(t, logs.FilterMessage("no brewery matched listing").All(), 1)
}

func TestRunMemberships_ReplacesStaleSpelling(t *testing.T) {
	stale := brewery(1, "Heavy Seas Brewing")
	stale.Memberships = []model.Membership{
		{Model: gorm.Model{ID: 9}, BreweryID: 1, Name: "Maryland Brewers Assoc"},
	}

	store := newFakeStore(stale)
	listings := &fakeListings{listings: []model.Listing{
		guildListing("Heavy Seas Brewing", nil),
	}}

	runner := newRunner(store, zaptest.NewLogger(t))

	summary, err := runner.RunMemberships(context.Background(), listings)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, []uint{9}, store.deletedBadges)
	require.Len(t, store.addedBadges, 1)
	assert.Equal(t, "Brewers Association of Maryland", store.addedBadges[0].Name)
}

func TestRunMemberships_SecondRunIsNoOp(t *testing.T) {
	store := newFakeStore(brewery(1, "Heavy Seas Brewing"))
	listings := &fakeListings{listings: []model.Listing{
		guildListing("Heavy Seas Brewing", nil),
	}}

	runner := newRunner(store, zaptest.NewLogger(t))

	first, err := runner.RunMemberships(context.Background(), listings)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Updated)

	second, err := runner.RunMemberships(context.Background(), listings)
	require.NoError(t, err)
	assert.Zero(t, second.Updated)
	assert.Equal(t, 1, second.Skipped)
	assert.Len(t, store.addedBadges, 1)
}

func TestRunMemberships_UnknownFlagIsSkipped(t *testing.T) {
	store := newFakeStore(brewery(1, "Heavy Seas Brewing"))
	listings := &fakeListings{listings: []model.Listing{
		{Name: "Heavy Seas Brewing", Flags: []string{"mystery_club"}},
	}}

	core, logs := observer.New(zap.WarnLevel)
	runner := newRunner(store, zap.New(core))

	summary, err := runner.RunMemberships(context.Background(), listings)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, store.addedBadges)
	assert.Len(t, logs.FilterMessage("unknown membership flag").All(), 1)
}

func TestRunMemberships_ScrapeErrorWithNoListings(t *testing.T) {
	store := newFakeStore(brewery(1, "Heavy Seas Brewing"))
	listings := &fakeListings{err: errors.New("directory unreachable")}

	runner := newRunner(store, zaptest.NewLogger(t))

	summary, err := runner.RunMemberships(context.Background(), listings)

	assert.Error(t, err)
	assert.Zero(t, summary.Processed)
}

func TestRunDedup_DeletesNewerDuplicates(t *testing.T) {
	store := newFakeStore(brewery(7, "Heavy Seas Brewing"))

	reviewedAt := time.Unix(100, 0)
	older, _ := time.Parse(time.DateOnly, "2024-01-01")
	newer, _ := time.Parse(time.DateOnly, "2024-02-01")

	store.reviews[7] = []model.Review{
		{Model: gorm.Model{ID: 1, CreatedAt: older}, BreweryID: 7, ReviewerName: pointy.String("Al"), ReviewedAt: &reviewedAt},
		{Model: gorm.Model{ID: 2, CreatedAt: newer}, BreweryID: 7, ReviewerName: pointy.String("Al"), ReviewedAt: &reviewedAt},
	}

	runner := newRunner(store, zaptest.NewLogger(t))

	summary, err := runner.RunDedup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, []uint{2}, store.deletedReviews)
}
