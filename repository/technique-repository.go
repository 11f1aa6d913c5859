package repository

import (
	"dojo/catalog"
	"dojo/logger"
	"dojo/metrics"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const EmbeddedSource = "embedded"

// Snapshot is an immutable view of the catalog. A new snapshot replaces the
// old one as a whole; readers never observe a partial update.
type Snapshot struct {
	Version    int64
	LoadedAt   time.Time
	Source     string
	Techniques []*catalog.Technique
	Report     catalog.ValidationReport
}

type Loader func() ([]*catalog.Technique, error)

type TechniqueRepository struct {
	source   string
	load     Loader
	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func(*Snapshot)

	log *logger.Logger
}

// NewTechniqueRepository loads from file when it is non-empty, otherwise
// from the compiled-in catalog. The initial load must validate.
func NewTechniqueRepository(file string, log *logger.Logger) (*TechniqueRepository, error) {
	if file == "" {
		return NewTechniqueRepositoryWithLoader(EmbeddedSource, func() ([]*catalog.Technique, error) {
			return catalog.Techniques(), nil
		}, log)
	}
	return NewTechniqueRepositoryWithLoader(file, func() ([]*catalog.Technique, error) {
		return LoadFile(file)
	}, log)
}

func NewTechniqueRepositoryWithLoader(source string, load Loader, log *logger.Logger) (*TechniqueRepository, error) {
	if log == nil {
		log = logger.Default()
	}
	r := &TechniqueRepository{
		source: source,
		load:   load,
		log:    log.With("source", source),
	}
	if _, err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func LoadFile(path string) ([]*catalog.Technique, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return Decode(f, format)
}

func (r *TechniqueRepository) Source() string {
	return r.source
}

func (r *TechniqueRepository) Snapshot() *Snapshot {
	return r.current.Load()
}

func (r *TechniqueRepository) Techniques() []*catalog.Technique {
	return r.current.Load().Techniques
}

// OnSwap registers fn to be called after every accepted reload.
func (r *TechniqueRepository) OnSwap(fn func(*Snapshot)) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Reload reads the source again and swaps the snapshot if it validates.
// On failure the previous snapshot stays live and the report is returned
// alongside a ReloadError.
func (r *TechniqueRepository) Reload() (catalog.ValidationReport, error) {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	techniques, err := r.load()
	if err != nil {
		metrics.CatalogReloadCounter.WithLabelValues("load_error").Inc()
		r.log.Error("failed to load catalog", "error", err)
		return catalog.ValidationReport{}, fmt.Errorf("load catalog from %s: %w", r.source, err)
	}
	report := catalog.Validate(techniques)
	if !report.OK() {
		metrics.CatalogReloadCounter.WithLabelValues("rejected").Inc()
		r.log.Warn("catalog rejected", "errors", report.Errors)
		return report, &ReloadError{Report: report}
	}
	for _, w := range report.Warnings {
		r.log.Warn("catalog warning", "warning", w)
	}

	var version int64 = 1
	if prev := r.current.Load(); prev != nil {
		version = prev.Version + 1
	}
	snapshot := &Snapshot{
		Version:    version,
		LoadedAt:   time.Now(),
		Source:     r.source,
		Techniques: techniques,
		Report:     report,
	}
	r.current.Store(snapshot)

	metrics.CatalogReloadCounter.WithLabelValues("accepted").Inc()
	metrics.CatalogSizeGauge.Set(float64(len(techniques)))
	metrics.CatalogVersionGauge.Set(float64(version))
	metrics.CatalogValidationWarnings.Set(float64(len(report.Warnings)))
	r.log.Info("catalog loaded", "version", version, "techniques", len(techniques))

	r.listenersMu.RLock()
	listeners := append([]func(*Snapshot){}, r.listeners...)
	r.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(snapshot)
	}
	return report, nil
}

type ReloadError struct {
	Report catalog.ValidationReport
}

func (e *ReloadError) Error() string {
	return "catalog failed validation: " + e.Report.Error()
}
