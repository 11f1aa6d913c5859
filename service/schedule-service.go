package service

import (
	"bytes"
	"dojo/app_error"
	"dojo/catalog"
	"dojo/utils"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/schedule.yaml
var scheduleYAML []byte

type Weekday string

var Weekdays = []Weekday{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type Instructor struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Name        string   `yaml:"name" json:"name"`
	Belt        string   `yaml:"belt" json:"belt"`
	Title       string   `yaml:"title" json:"title"`
	Bio         string   `yaml:"bio" json:"bio"`
	Specialties []string `yaml:"specialties" json:"specialties"`
}

type Class struct {
	ID         string             `yaml:"id" json:"id"`
	Name       string             `yaml:"name" json:"name"`
	Day        Weekday            `yaml:"day" json:"day"`
	Start      string             `yaml:"start" json:"start"`
	End        string             `yaml:"end" json:"end"`
	Instructor string             `yaml:"instructor,omitempty" json:"instructor,omitempty"`
	Gi         bool               `yaml:"gi" json:"gi"`
	Level      catalog.Difficulty `yaml:"level" json:"level"`
}

type schedule struct {
	Instructors []*Instructor `yaml:"instructors"`
	Classes     []*Class      `yaml:"classes"`
}

type ScheduleService struct {
	instructors []*Instructor
	classes     []*Class
}

func NewScheduleService() (*ScheduleService, error) {
	return NewScheduleServiceFromYAML(scheduleYAML)
}

func NewScheduleServiceFromYAML(data []byte) (*ScheduleService, error) {
	var s schedule
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	known := make(map[string]bool, len(s.Instructors))
	for _, i := range s.Instructors {
		known[i.Slug] = true
	}
	for _, c := range s.Classes {
		if _, err := ParseWeekday(string(c.Day)); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.ID, err)
		}
		if c.Instructor != "" && !known[c.Instructor] {
			return nil, fmt.Errorf("class %s: unknown instructor %q", c.ID, c.Instructor)
		}
	}
	sort.SliceStable(s.Classes, func(i, j int) bool {
		di, dj := dayIndex(s.Classes[i].Day), dayIndex(s.Classes[j].Day)
		if di != dj {
			return di < dj
		}
		return s.Classes[i].Start < s.Classes[j].Start
	})
	return &ScheduleService{instructors: s.Instructors, classes: s.Classes}, nil
}

func dayIndex(d Weekday) int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return len(Weekdays)
}

func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(strings.ToLower(s))
	if dayIndex(d) == len(Weekdays) {
		return "", fmt.Errorf("%w: unknown day %q", app_error.ErrInvalidFilter, s)
	}
	return d, nil
}

// GetClasses returns the weekly schedule ordered by day and start time,
// optionally restricted to one day.
func (s *ScheduleService) GetClasses(day string) ([]*Class, error) {
	if day == "" || day == catalog.All {
		return s.classes, nil
	}
	d, err := ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	return utils.Filter(s.classes, func(c *Class) bool { return c.Day == d }), nil
}

func (s *ScheduleService) GetInstructors() []*Instructor {
	return s.instructors
}

func (s *ScheduleService) GetInstructor(slug string) (*Instructor, []*Class, error) {
	instructor, ok := utils.Find(s.instructors, func(i *Instructor) bool { return i.Slug == slug })
	if !ok {
		return nil, nil, app_error.ErrInstructorNotFound
	}
	classes := utils.Filter(s.classes, func(c *Class) bool { return c.Instructor == slug })
	return instructor, classes, nil
}
