package service

import (
	"dojo/app_error"
	"dojo/catalog"
	"dojo/metrics"
	"dojo/repository"
	"fmt"
)

type TechniqueService struct {
	techniqueRepository *repository.TechniqueRepository
}

func NewTechniqueService(repo *repository.TechniqueRepository) *TechniqueService {
	return &TechniqueService{techniqueRepository: repo}
}

// TechniqueFilter is the raw form of a technique browser query, as it
// arrives from a request. "" and "all" mean no filter on that axis.
type TechniqueFilter struct {
	Query      string
	Category   string
	Difficulty string
	Position   string
}

func (f TechniqueFilter) parse() (catalog.Query, error) {
	q := catalog.Query{Text: f.Query}
	c, ok, err := catalog.ParseCategory(f.Category)
	if err != nil {
		return q, fmt.Errorf("%w: %v", app_error.ErrInvalidFilter, err)
	}
	if ok {
		q.Category = c
	}
	d, ok, err := catalog.ParseDifficulty(f.Difficulty)
	if err != nil {
		return q, fmt.Errorf("%w: %v", app_error.ErrInvalidFilter, err)
	}
	if ok {
		q.Difficulty = d
	}
	p, ok, err := catalog.ParsePosition(f.Position)
	if err != nil {
		return q, fmt.Errorf("%w: %v", app_error.ErrInvalidFilter, err)
	}
	if ok {
		q.Position = p
	}
	return q, nil
}

func observe(operation string, result []*catalog.Technique) []*catalog.Technique {
	metrics.TechniqueQueryCounter.WithLabelValues(operation).Inc()
	metrics.TechniqueQueryResults.WithLabelValues(operation).Observe(float64(len(result)))
	return result
}

func (s *TechniqueService) current() []*catalog.Technique {
	return s.techniqueRepository.Techniques()
}

func (s *TechniqueService) GetAllTechniques() []*catalog.Technique {
	return observe("all", s.current())
}

func (s *TechniqueService) GetTechniquesByCategory(c catalog.Category) []*catalog.Technique {
	return observe("category", catalog.ByCategory(s.current(), c))
}

func (s *TechniqueService) GetTechniquesByDifficulty(d catalog.Difficulty) []*catalog.Technique {
	return observe("difficulty", catalog.ByDifficulty(s.current(), d))
}

func (s *TechniqueService) GetTechniquesByPosition(p catalog.Position) []*catalog.Technique {
	return observe("position", catalog.ByPosition(s.current(), p))
}

func (s *TechniqueService) SearchTechniques(query string) []*catalog.Technique {
	return observe("search", catalog.Search(s.current(), query))
}

func (s *TechniqueService) GetTechniqueById(id string) (*catalog.Technique, error) {
	metrics.TechniqueQueryCounter.WithLabelValues("id").Inc()
	t, ok := catalog.FindByID(s.current(), id)
	if !ok {
		return nil, app_error.ErrTechniqueNotFound
	}
	return t, nil
}

func (s *TechniqueService) GetStats() catalog.Stats {
	metrics.TechniqueQueryCounter.WithLabelValues("stats").Inc()
	return catalog.ComputeStats(s.current())
}

func (s *TechniqueService) FilterTechniques(filter TechniqueFilter) ([]*catalog.Technique, error) {
	q, err := filter.parse()
	if err != nil {
		return nil, err
	}
	return observe("filter", catalog.Filter(s.current(), q)), nil
}

func (s *TechniqueService) GroupTechniques(filter TechniqueFilter) ([]catalog.Group, error) {
	techniques, err := s.FilterTechniques(filter)
	if err != nil {
		return nil, err
	}
	return catalog.GroupByCategory(techniques), nil
}

// GetRelatedTechniques resolves the related ids of the technique with id.
// Ids that no longer exist are reported, not treated as errors.
func (s *TechniqueService) GetRelatedTechniques(id string) ([]*catalog.Technique, []string, error) {
	techniques := s.current()
	t, ok := catalog.FindByID(techniques, id)
	if !ok {
		return nil, nil, app_error.ErrTechniqueNotFound
	}
	related, dangling := catalog.Related(techniques, t)
	observe("related", related)
	return related, dangling, nil
}

func (s *TechniqueService) Snapshot() *repository.Snapshot {
	return s.techniqueRepository.Snapshot()
}

func (s *TechniqueService) Reload() (catalog.ValidationReport, error) {
	report, err := s.techniqueRepository.Reload()
	if err != nil {
		return report, fmt.Errorf("%w: %v", app_error.ErrReloadRejected, err)
	}
	return report, nil
}

func (s *TechniqueService) OnSwap(fn func(*repository.Snapshot)) {
	s.techniqueRepository.OnSwap(fn)
}
