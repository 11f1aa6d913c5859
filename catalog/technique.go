// Package catalog holds the technique reference database and the pure query
// functions over it. The shipped records are read-only process-wide state.
package catalog

// Technique is a single entry of the reference database.
//
// Optional scalar fields are pointers and optional lists are nil when absent,
// so a record with points: 0 is distinguishable from an unscored one.
type Technique struct {
	ID                string       `json:"id" yaml:"id"`
	Name              string       `json:"name" yaml:"name"`
	Aliases           []string     `json:"aliases" yaml:"aliases,omitempty"`
	Category          Category     `json:"category" yaml:"category"`
	Subcategory       *Subcategory `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Difficulty        Difficulty   `json:"difficulty" yaml:"difficulty"`
	Description       string       `json:"description" yaml:"description"`
	KeyPoints         []string     `json:"keyPoints" yaml:"keyPoints,omitempty"`
	StartingPosition  *Position    `json:"startingPosition,omitempty" yaml:"startingPosition,omitempty"`
	EndingPosition    *Position    `json:"endingPosition,omitempty" yaml:"endingPosition,omitempty"`
	GiLegal           bool         `json:"giLegal" yaml:"giLegal"`
	NoGiLegal         bool         `json:"noGiLegal" yaml:"noGiLegal"`
	Points            *int         `json:"points,omitempty" yaml:"points,omitempty"`
	BeltRestrictions  *string      `json:"beltRestrictions,omitempty" yaml:"beltRestrictions,omitempty"`
	RelatedTechniques []string     `json:"relatedTechniques" yaml:"relatedTechniques,omitempty"`
}

// HasPosition reports whether p is the starting or the ending position.
func (t *Technique) HasPosition(p Position) bool {
	return (t.StartingPosition != nil && *t.StartingPosition == p) ||
		(t.EndingPosition != nil && *t.EndingPosition == p)
}

func ptr[T any](v T) *T {
	return &v
}
