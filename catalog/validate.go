package catalog

import (
	"fmt"
	"strings"
)

// ValidationReport separates problems that make a catalog unusable from
// ones that are tolerated at runtime, such as dangling related ids.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r ValidationReport) OK() bool {
	return len(r.Errors) == 0
}

func (r ValidationReport) Error() string {
	return strings.Join(r.Errors, "; ")
}

func (r *ValidationReport) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationReport) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func Validate(ts []*Technique) ValidationReport {
	report := ValidationReport{Errors: []string{}, Warnings: []string{}}
	seen := make(map[string]int, len(ts))
	for i, t := range ts {
		if t == nil {
			report.errorf("record %d is nil", i)
			continue
		}
		if t.ID == "" {
			report.errorf("record %d has an empty id", i)
		} else if first, dup := seen[t.ID]; dup {
			report.errorf("duplicate id %q at records %d and %d", t.ID, first, i)
		} else {
			seen[t.ID] = i
		}
		if strings.TrimSpace(t.Name) == "" {
			report.errorf("%s: empty name", t.ID)
		}
		if strings.TrimSpace(t.Description) == "" {
			report.errorf("%s: empty description", t.ID)
		}
		if !t.Category.Valid() {
			report.errorf("%s: invalid category %q", t.ID, t.Category)
		}
		if !t.Difficulty.Valid() {
			report.errorf("%s: invalid difficulty %q", t.ID, t.Difficulty)
		}
		if t.Subcategory != nil && !t.Subcategory.Valid() {
			report.errorf("%s: invalid subcategory %q", t.ID, *t.Subcategory)
		}
		if t.StartingPosition != nil && !t.StartingPosition.Valid() {
			report.errorf("%s: invalid starting position %q", t.ID, *t.StartingPosition)
		}
		if t.EndingPosition != nil && !t.EndingPosition.Valid() {
			report.errorf("%s: invalid ending position %q", t.ID, *t.EndingPosition)
		}
		if t.Points != nil && *t.Points < 0 {
			report.errorf("%s: negative points %d", t.ID, *t.Points)
		}
		if !t.GiLegal && !t.NoGiLegal {
			report.warnf("%s: legal in neither gi nor no-gi", t.ID)
		}
	}
	for _, t := range ts {
		if t == nil {
			continue
		}
		for _, id := range t.RelatedTechniques {
			if _, ok := seen[id]; !ok {
				report.warnf("%s: related technique %q does not exist", t.ID, id)
			}
		}
	}
	return report
}
