package repository

import (
	"bytes"
	"context"
	"dojo/catalog"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `techniques:
  - id: armbar
    name: Armbar
    aliases: [Juji Gatame]
    category: submission
    subcategory: joint-lock
    difficulty: fundamental
    description: Hyperextends the elbow.
    startingPosition: multiple
    giLegal: true
    noGiLegal: true
    points: 0
  - id: mount
    name: Mount
    category: position
    difficulty: fundamental
    description: Sitting on the torso.
    endingPosition: mount
    giLegal: true
    noGiLegal: true
    points: 4
    relatedTechniques: [armbar, upa-escape]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedRepository(t *testing.T) {
	repo, err := NewTechniqueRepository("", nil)
	require.NoError(t, err)
	snap := repo.Snapshot()
	assert.Equal(t, int64(1), snap.Version)
	assert.Equal(t, EmbeddedSource, snap.Source)
	assert.Equal(t, len(catalog.Techniques()), len(repo.Techniques()))
}

func TestFileRepositoryKeepsDanglingReferences(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.yaml", sampleYAML)
	repo, err := NewTechniqueRepository(path, nil)
	require.NoError(t, err)

	ts := repo.Techniques()
	require.Len(t, ts, 2)
	require.NotNil(t, ts[0].Points)
	assert.Equal(t, 0, *ts[0].Points)
	assert.Equal(t, []string{"Juji Gatame"}, ts[0].Aliases)
	assert.Len(t, repo.Snapshot().Report.Warnings, 1)
}

func TestReloadRejectsInvalidCatalog(t *testing.T) {
	good := []*catalog.Technique{{ID: "a", Name: "A", Description: "d", Category: catalog.CategorySweep, Difficulty: catalog.Fundamental, GiLegal: true}}
	current := good
	repo, err := NewTechniqueRepositoryWithLoader("test", func() ([]*catalog.Technique, error) {
		return current, nil
	}, nil)
	require.NoError(t, err)

	var swaps []int64
	repo.OnSwap(func(s *Snapshot) { swaps = append(swaps, s.Version) })

	current = append(append([]*catalog.Technique{}, good...), good[0])
	report, err := repo.Reload()
	var reloadErr *ReloadError
	require.True(t, errors.As(err, &reloadErr))
	assert.False(t, report.OK())
	assert.Equal(t, int64(1), repo.Snapshot().Version)
	assert.Len(t, repo.Techniques(), 1)
	assert.Empty(t, swaps)

	current = good
	_, err = repo.Reload()
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, swaps)
}

func TestReloadLoadError(t *testing.T) {
	_, err := NewTechniqueRepositoryWithLoader("broken", func() ([]*catalog.Technique, error) {
		return nil, errors.New("disk gone")
	}, nil)
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownValues(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("techniques:\n  - id: x\n    category: kata\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(bytes.NewBufferString(`{"techniques":[{"id":"x","colour":"blue"}]}`), FormatJSON)
	assert.Error(t, err)
}

func TestEncodeDecodeKeepsEnumIdentifiers(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, catalog.Techniques()))
		assert.Contains(t, buf.String(), "guard-pass")
		assert.Contains(t, buf.String(), "back-control")

		decoded, err := Decode(&buf, format)
		require.NoError(t, err)
		assert.Equal(t, catalog.Techniques(), decoded, "format %s", format)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := FormatFromPath("/tmp/catalog.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("toml")
	assert.Error(t, err)
}

func TestConcurrentReadsDuringReload(t *testing.T) {
	repo, err := NewTechniqueRepository("", nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := repo.Snapshot()
				assert.Equal(t, len(catalog.Techniques()), len(snap.Techniques))
			}
		}()
	}
	for i := 0; i < 10; i++ {
		_, err := repo.Reload()
		require.NoError(t, err)
	}
	wg.Wait()
	assert.Equal(t, int64(11), repo.Snapshot().Version)
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.yaml", sampleYAML)
	repo, err := NewTechniqueRepository(path, nil)
	require.NoError(t, err)

	swapped := make(chan *Snapshot, 4)
	repo.OnSwap(func(s *Snapshot) { swapped <- s })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, repo.Watch(ctx))

	trimmed := sampleYAML[:bytes.Index([]byte(sampleYAML), []byte("  - id: mount"))]
	writeFile(t, dir, "catalog.yaml", trimmed)

	select {
	case s := <-swapped:
		assert.Len(t, s.Techniques, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}
}
