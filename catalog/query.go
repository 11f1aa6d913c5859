package catalog

import "strings"

type Stats struct {
	Total        int                `json:"total"`
	ByCategory   map[Category]int   `json:"byCategory"`
	ByDifficulty map[Difficulty]int `json:"byDifficulty"`
}

// Query combines the filters used by the technique browser. Zero values skip
// the corresponding axis; all set predicates must hold.
type Query struct {
	Text       string
	Category   Category
	Difficulty Difficulty
	Position   Position
}

type Group struct {
	Category   Category     `json:"category"`
	Techniques []*Technique `json:"techniques"`
}

func filter(ts []*Technique, keep func(*Technique) bool) []*Technique {
	out := make([]*Technique, 0)
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func ByCategory(ts []*Technique, c Category) []*Technique {
	return filter(ts, func(t *Technique) bool { return t.Category == c })
}

func ByDifficulty(ts []*Technique, d Difficulty) []*Technique {
	return filter(ts, func(t *Technique) bool { return t.Difficulty == d })
}

func ByPosition(ts []*Technique, p Position) []*Technique {
	return filter(ts, func(t *Technique) bool { return t.HasPosition(p) })
}

// Search does a case-insensitive substring match on name, description,
// aliases and key points. An empty query matches everything.
func Search(ts []*Technique, query string) []*Technique {
	q := strings.ToLower(query)
	return filter(ts, func(t *Technique) bool { return matches(t, q) })
}

func matches(t *Technique, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, a := range t.Aliases {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	for _, k := range t.KeyPoints {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

// FindByID is an exact, case-sensitive lookup.
func FindByID(ts []*Technique, id string) (*Technique, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func ComputeStats(ts []*Technique) Stats {
	stats := Stats{
		Total:        len(ts),
		ByCategory:   make(map[Category]int),
		ByDifficulty: make(map[Difficulty]int),
	}
	for _, t := range ts {
		stats.ByCategory[t.Category]++
		stats.ByDifficulty[t.Difficulty]++
	}
	return stats
}

// Filter narrows by text, then category, then difficulty, then position.
func Filter(ts []*Technique, q Query) []*Technique {
	out := append(make([]*Technique, 0, len(ts)), ts...)
	if q.Text != "" {
		out = Search(out, q.Text)
	}
	if q.Category != "" {
		out = ByCategory(out, q.Category)
	}
	if q.Difficulty != "" {
		out = ByDifficulty(out, q.Difficulty)
	}
	if q.Position != "" {
		out = ByPosition(out, q.Position)
	}
	return out
}

// GroupByCategory buckets ts in Categories order and drops empty buckets.
func GroupByCategory(ts []*Technique) []Group {
	buckets := make(map[Category][]*Technique)
	for _, t := range ts {
		buckets[t.Category] = append(buckets[t.Category], t)
	}
	groups := make([]Group, 0, len(buckets))
	for _, c := range Categories {
		if members, ok := buckets[c]; ok {
			groups = append(groups, Group{Category: c, Techniques: members})
		}
	}
	return groups
}

// Related resolves t's related ids against ts. Ids that do not resolve are
// returned as dangling rather than treated as an error.
func Related(ts []*Technique, t *Technique) (resolved []*Technique, dangling []string) {
	resolved = make([]*Technique, 0, len(t.RelatedTechniques))
	dangling = make([]string, 0)
	for _, id := range t.RelatedTechniques {
		if r, ok := FindByID(ts, id); ok {
			resolved = append(resolved, r)
		} else {
			dangling = append(dangling, id)
		}
	}
	return resolved, dangling
}
