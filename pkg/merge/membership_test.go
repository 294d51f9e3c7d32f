package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/gchukura/marylandbrewery-sub000/pkg/merge"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

const guildName = "Brewers Association of Maryland"

var guildAliases = []string{"maryland brewers", "brewers association"}

func TestReconcileMembership_AppendsWhenMissing(t *testing.T) {
	existing := []model.Membership{{Name: "Some Other Club"}}

	change := merge.ReconcileMembership(existing, guildName, guildAliases)

	assert.True(t, change.Append)
	assert.Empty(t, change.Stale)
}

func TestReconcileMembership_RemovesStaleSpellings(t *testing.T) {
	existing := []model.Membership{
		{Model: gormModel(1), Name: "Maryland Brewers Assoc"},
		{Model: gormModel(2), Name: "brewers association of maryland"},
	}

	change := merge.ReconcileMembership(existing, guildName, guildAliases)

	assert.True(t, change.Append)
	require.Len(t, change.Stale, 2)
}

func TestReconcileMembership_CanonicalEntryIsNoOp(t *testing.T) {
	existing := []model.Membership{{Name: guildName}}

	change := merge.ReconcileMembership(existing, guildName, guildAliases)

	assert.True(t, change.Empty())
}

func TestReconcileMembership_DuplicateCanonicalKeepsOne(t *testing.T) {
	existing := []model.Membership{
		{Model: gormModel(1), Name: guildName},
		{Model: gormModel(2), Name: guildName},
	}

	change := merge.ReconcileMembership(existing, guildName, guildAliases)

	assert.False(t, change.Append)
	require.Len(t, change.Stale, 1)
	assert.Equal(t, uint(2), change.Stale[0].ID)
}
