package service

import (
	"dojo/app_error"
	"dojo/catalog"
	"dojo/repository"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTechniqueService(t *testing.T) *TechniqueService {
	t.Helper()
	repo, err := repository.NewTechniqueRepository("", nil)
	require.NoError(t, err)
	return NewTechniqueService(repo)
}

func TestFilterTechniques(t *testing.T) {
	s := newTechniqueService(t)

	all, err := s.FilterTechniques(TechniqueFilter{Category: "all", Difficulty: "all"})
	require.NoError(t, err)
	assert.Len(t, all, len(catalog.Techniques()))

	sweeps, err := s.FilterTechniques(TechniqueFilter{Query: "guard", Category: "sweep", Difficulty: "fundamental"})
	require.NoError(t, err)
	require.NotEmpty(t, sweeps)
	for _, tech := range sweeps {
		assert.Equal(t, catalog.CategorySweep, tech.Category)
		assert.Equal(t, catalog.Fundamental, tech.Difficulty)
	}
}

func TestFilterTechniquesInvalidValue(t *testing.T) {
	s := newTechniqueService(t)
	_, err := s.FilterTechniques(TechniqueFilter{Category: "kata"})
	assert.ErrorIs(t, err, app_error.ErrInvalidFilter)
	_, err = s.FilterTechniques(TechniqueFilter{Position: "rubber-guard"})
	assert.ErrorIs(t, err, app_error.ErrInvalidFilter)
}

func TestGetTechniqueById(t *testing.T) {
	s := newTechniqueService(t)
	tech, err := s.GetTechniqueById("kimura")
	require.NoError(t, err)
	assert.Equal(t, "Kimura", tech.Name)

	_, err = s.GetTechniqueById("kimura-trap-system")
	assert.True(t, errors.Is(err, app_error.ErrTechniqueNotFound))
}

func TestGroupTechniques(t *testing.T) {
	s := newTechniqueService(t)
	groups, err := s.GroupTechniques(TechniqueFilter{Difficulty: "advanced"})
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	last := -1
	for _, g := range groups {
		idx := -1
		for i, c := range catalog.Categories {
			if c == g.Category {
				idx = i
			}
		}
		assert.Greater(t, idx, last)
		last = idx
		assert.NotEmpty(t, g.Techniques)
	}
}

func TestGetRelatedTechniques(t *testing.T) {
	s := newTechniqueService(t)
	related, dangling, err := s.GetRelatedTechniques("armbar")
	require.NoError(t, err)
	assert.Empty(t, dangling)
	names := make([]string, 0)
	for _, r := range related {
		names = append(names, r.ID)
	}
	assert.Equal(t, []string{"triangle-choke", "omoplata", "kimura"}, names)

	_, _, err = s.GetRelatedTechniques("nope")
	assert.ErrorIs(t, err, app_error.ErrTechniqueNotFound)
}

func TestGetStatsMatchesCatalog(t *testing.T) {
	s := newTechniqueService(t)
	stats := s.GetStats()
	assert.Equal(t, len(catalog.Techniques()), stats.Total)
	assert.Len(t, s.GetTechniquesByCategory(catalog.CategorySweep), stats.ByCategory[catalog.CategorySweep])
	assert.Len(t, s.GetTechniquesByDifficulty(catalog.Advanced), stats.ByDifficulty[catalog.Advanced])
}

func TestReloadIncrementsVersion(t *testing.T) {
	s := newTechniqueService(t)
	before := s.Snapshot().Version
	_, err := s.Reload()
	require.NoError(t, err)
	assert.Equal(t, before+1, s.Snapshot().Version)
}
