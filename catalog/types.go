package catalog

import "fmt"

type Category string

const (
	CategorySubmission Category = "submission"
	CategoryPosition   Category = "position"
	CategoryGuard      Category = "guard"
	CategoryGuardPass  Category = "guard-pass"
	CategorySweep      Category = "sweep"
	CategoryTakedown   Category = "takedown"
	CategoryEscape     Category = "escape"
	CategoryBackTake   Category = "back-take"
)

// Categories is the display order used when grouping.
var Categories = []Category{
	CategorySubmission,
	CategoryPosition,
	CategoryGuard,
	CategoryGuardPass,
	CategorySweep,
	CategoryTakedown,
	CategoryEscape,
	CategoryBackTake,
}

type Difficulty string

const (
	Fundamental  Difficulty = "fundamental"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

var Difficulties = []Difficulty{Fundamental, Intermediate, Advanced}

type Position string

const (
	PositionClosedGuard Position = "closed-guard"
	PositionOpenGuard   Position = "open-guard"
	PositionHalfGuard   Position = "half-guard"
	PositionMount       Position = "mount"
	PositionSideControl Position = "side-control"
	PositionBackControl Position = "back-control"
	PositionKneeOnBelly Position = "knee-on-belly"
	PositionNorthSouth  Position = "north-south"
	PositionTurtle      Position = "turtle"
	PositionStanding    Position = "standing"
	PositionGuardTop    Position = "guard-top"
	PositionMultiple    Position = "multiple"
)

var Positions = []Position{
	PositionClosedGuard,
	PositionOpenGuard,
	PositionHalfGuard,
	PositionMount,
	PositionSideControl,
	PositionBackControl,
	PositionKneeOnBelly,
	PositionNorthSouth,
	PositionTurtle,
	PositionStanding,
	PositionGuardTop,
	PositionMultiple,
}

type Subcategory string

const (
	SubChoke       Subcategory = "choke"
	SubJointLock   Subcategory = "joint-lock"
	SubLegLock     Subcategory = "leg-lock"
	SubCompression Subcategory = "compression"
	SubClosedGuard Subcategory = "closed-guard"
	SubOpenGuard   Subcategory = "open-guard"
	SubHalfGuard   Subcategory = "half-guard"
	SubDominant    Subcategory = "dominant"
	SubThrow       Subcategory = "throw"
	SubTrip        Subcategory = "trip"
	SubSingleLeg   Subcategory = "single-leg"
	SubDoubleLeg   Subcategory = "double-leg"
	SubPressure    Subcategory = "pressure"
	SubSpeed       Subcategory = "speed"
)

var Subcategories = []Subcategory{
	SubChoke,
	SubJointLock,
	SubLegLock,
	SubCompression,
	SubClosedGuard,
	SubOpenGuard,
	SubHalfGuard,
	SubDominant,
	SubThrow,
	SubTrip,
	SubSingleLeg,
	SubDoubleLeg,
	SubPressure,
	SubSpeed,
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool { return contains(Categories, c) }
func (d Difficulty) Valid() bool { return contains(Difficulties, d) }
func (p Position) Valid() bool { return contains(Positions, p) }
func (s Subcategory) Valid() bool { return contains(Subcategories, s) }

func (c *Category) UnmarshalText(text []byte) error {
	v := Category(text)
	if !v.Valid() {
		return fmt.Errorf("invalid category %q", text)
	}
	*c = v
	return nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v := Difficulty(text)
	if !v.Valid() {
		return fmt.Errorf("invalid difficulty %q", text)
	}
	*d = v
	return nil
}

func (p *Position) UnmarshalText(text []byte) error {
	v := Position(text)
	if !v.Valid() {
		return fmt.Errorf("invalid position %q", text)
	}
	*p = v
	return nil
}

func (s *Subcategory) UnmarshalText(text []byte) error {
	v := Subcategory(text)
	if !v.Valid() {
		return fmt.Errorf("invalid subcategory %q", text)
	}
	*s = v
	return nil
}

// ParseCategory accepts "" and "all" as "no filter" and returns ok=false for them.
func ParseCategory(s string) (c Category, ok bool, err error) {
	if s == "" || s == All {
		return "", false, nil
	}
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return "", false, err
	}
	return c, true, nil
}

func ParseDifficulty(s string) (d Difficulty, ok bool, err error) {
	if s == "" || s == All {
		return "", false, nil
	}
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return "", false, err
	}
	return d, true, nil
}

func ParsePosition(s string) (p Position, ok bool, err error) {
	if s == "" || s == All {
		return "", false, nil
	}
	if err := p.UnmarshalText([]byte(s)); err != nil {
		return "", false, err
	}
	return p, true, nil
}

// All is the filter value meaning "do not narrow on this axis".
const All = "all"
