package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ts []*Technique) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestArmbarScenario(t *testing.T) {
	all := Techniques()

	armbar, ok := FindByID(all, "armbar")
	require.True(t, ok)
	assert.Equal(t, "Armbar", armbar.Name)
	assert.Equal(t, CategorySubmission, armbar.Category)
	assert.Equal(t, Fundamental, armbar.Difficulty)
	require.NotNil(t, armbar.StartingPosition)
	assert.Equal(t, PositionMultiple, *armbar.StartingPosition)
	assert.True(t, armbar.GiLegal)
	assert.True(t, armbar.NoGiLegal)
	require.NotNil(t, armbar.Points)
	assert.Equal(t, 0, *armbar.Points)

	assert.Contains(t, ids(Search(all, "juji")), "armbar")
	assert.Contains(t, ids(ByDifficulty(all, Fundamental)), "armbar")
}

func TestFindByIDMiss(t *testing.T) {
	all := Techniques()
	tech, ok := FindByID(all, "flying-scissor-heel-hook")
	assert.False(t, ok)
	assert.Nil(t, tech)

	_, ok = FindByID(all, "Armbar")
	assert.False(t, ok, "lookup must be case-sensitive")
}

func TestByCategoryIsIdempotent(t *testing.T) {
	all := Techniques()
	for _, c := range Categories {
		once := ByCategory(all, c)
		twice := ByCategory(once, c)
		assert.Equal(t, ids(once), ids(twice), "category %s", c)
		for _, tech := range once {
			assert.Equal(t, c, tech.Category)
		}
	}
}

func TestByCategoryPreservesDeclarationOrder(t *testing.T) {
	all := Techniques()
	subs := ByCategory(all, CategorySubmission)
	require.NotEmpty(t, subs)

	index := make(map[string]int, len(all))
	for i, tech := range all {
		index[tech.ID] = i
	}
	for i := 1; i < len(subs); i++ {
		assert.Less(t, index[subs[i-1].ID], index[subs[i].ID])
	}
}

func TestByCategoryUnknownValue(t *testing.T) {
	assert.Empty(t, ByCategory(Techniques(), Category("kata")))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	all := Techniques()
	upper := Search(all, "RNC")
	lower := Search(all, "rnc")
	assert.Equal(t, ids(upper), ids(lower))
	assert.Contains(t, ids(lower), "rear-naked-choke")
}

func TestSearchBroaderTermIsSuperset(t *testing.T) {
	all := Techniques()
	narrow := Search(all, "rear-naked choke")
	broad := Search(all, "choke")
	for _, id := range ids(narrow) {
		assert.Contains(t, ids(broad), id)
	}
}

func TestSearchMatchesKeyPoints(t *testing.T) {
	found := Search(Techniques(), "run the pipe")
	assert.Equal(t, []string{"single-leg-takedown"}, ids(found))
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	all := Techniques()
	assert.Equal(t, ids(all), ids(Search(all, "")))
}

func TestByPositionIsInclusive(t *testing.T) {
	all := Techniques()
	found := ByPosition(all, PositionMount)
	foundIDs := ids(found)
	for _, tech := range all {
		starts := tech.StartingPosition != nil && *tech.StartingPosition == PositionMount
		ends := tech.EndingPosition != nil && *tech.EndingPosition == PositionMount
		if starts || ends {
			assert.Contains(t, foundIDs, tech.ID)
		} else {
			assert.NotContains(t, foundIDs, tech.ID)
		}
	}
	assert.Contains(t, foundIDs, "ezekiel-choke")
	assert.Contains(t, foundIDs, "scissor-sweep")
}

func TestByPositionIgnoresRecordsWithoutPositions(t *testing.T) {
	ts := []*Technique{{ID: "plain", Name: "Plain", Description: "x", Category: CategoryPosition, Difficulty: Fundamental}}
	for _, p := range Positions {
		assert.Empty(t, ByPosition(ts, p))
	}
}

func TestStatsConsistency(t *testing.T) {
	all := Techniques()
	stats := ComputeStats(all)
	assert.Equal(t, len(all), stats.Total)

	sumCategory := 0
	for _, n := range stats.ByCategory {
		sumCategory += n
	}
	sumDifficulty := 0
	for d, n := range stats.ByDifficulty {
		assert.True(t, d.Valid())
		sumDifficulty += n
	}
	assert.Equal(t, stats.Total, sumCategory)
	assert.Equal(t, stats.Total, sumDifficulty)
	assert.LessOrEqual(t, len(stats.ByDifficulty), len(Difficulties))
}

func TestStatsOmitsEmptyBuckets(t *testing.T) {
	ts := ByCategory(Techniques(), CategorySweep)
	stats := ComputeStats(ts)
	assert.Len(t, stats.ByCategory, 1)
	assert.Equal(t, len(ts), stats.ByCategory[CategorySweep])
	_, present := stats.ByCategory[CategorySubmission]
	assert.False(t, present)
}

func TestFilterComposesWithAnd(t *testing.T) {
	all := Techniques()
	found := Filter(all, Query{Text: "choke", Category: CategorySubmission, Difficulty: Intermediate})
	require.NotEmpty(t, found)
	for _, tech := range found {
		assert.Equal(t, CategorySubmission, tech.Category)
		assert.Equal(t, Intermediate, tech.Difficulty)
		assert.Contains(t, ids(Search(all, "choke")), tech.ID)
	}
	assert.NotContains(t, ids(found), "rear-naked-choke")
}

func TestFilterWithoutPredicatesCopies(t *testing.T) {
	all := Techniques()
	found := Filter(all, Query{})
	assert.Equal(t, ids(all), ids(found))
	found[0] = nil
	assert.NotNil(t, all[0])
}

func TestGroupByCategoryUsesEnumerationOrder(t *testing.T) {
	// Declared escape before submission on purpose.
	ts := []*Technique{
		{ID: "e", Category: CategoryEscape},
		{ID: "s1", Category: CategorySubmission},
		{ID: "s2", Category: CategorySubmission},
	}
	groups := GroupByCategory(ts)
	require.Len(t, groups, 2)
	assert.Equal(t, CategorySubmission, groups[0].Category)
	assert.Equal(t, []string{"s1", "s2"}, ids(groups[0].Techniques))
	assert.Equal(t, CategoryEscape, groups[1].Category)
}

func TestRelatedToleratesDanglingIds(t *testing.T) {
	ts := []*Technique{
		{ID: "a", RelatedTechniques: []string{"b", "gone"}},
		{ID: "b"},
	}
	resolved, dangling := Related(ts, ts[0])
	assert.Equal(t, []string{"b"}, ids(resolved))
	assert.Equal(t, []string{"gone"}, dangling)

	stats := ComputeStats(ts)
	assert.Equal(t, 2, stats.Total)
	assert.Len(t, Search(ts, ""), 2)
}

func TestParseFilterValues(t *testing.T) {
	c, ok, err := ParseCategory("all")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, c)

	c, ok, err = ParseCategory("guard-pass")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, CategoryGuardPass, c)

	_, _, err = ParseDifficulty("expert")
	assert.Error(t, err)

	p, ok, err := ParsePosition("north-south")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, PositionNorthSouth, p)
}
