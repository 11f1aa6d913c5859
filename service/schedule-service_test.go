package service

import (
	"dojo/app_error"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedScheduleLoads(t *testing.T) {
	s, err := NewScheduleService()
	require.NoError(t, err)

	classes, err := s.GetClasses("")
	require.NoError(t, err)
	require.NotEmpty(t, classes)
	for i := 1; i < len(classes); i++ {
		prev, cur := classes[i-1], classes[i]
		if prev.Day == cur.Day {
			assert.LessOrEqual(t, prev.Start, cur.Start)
		} else {
			assert.Less(t, dayIndex(prev.Day), dayIndex(cur.Day))
		}
	}
}

func TestGetClassesByDay(t *testing.T) {
	s, err := NewScheduleService()
	require.NoError(t, err)

	monday, err := s.GetClasses("Monday")
	require.NoError(t, err)
	assert.Len(t, monday, 2)

	sunday, err := s.GetClasses("sunday")
	require.NoError(t, err)
	assert.Empty(t, sunday)

	_, err = s.GetClasses("someday")
	assert.ErrorIs(t, err, app_error.ErrInvalidFilter)
}

func TestGetInstructor(t *testing.T) {
	s, err := NewScheduleService()
	require.NoError(t, err)

	instructor, classes, err := s.GetInstructor("dana-okafor")
	require.NoError(t, err)
	assert.Equal(t, "Dana Okafor", instructor.Name)
	assert.Len(t, classes, 2)

	_, _, err = s.GetInstructor("nobody")
	assert.ErrorIs(t, err, app_error.ErrInstructorNotFound)
}

func TestScheduleRejectsUnknownInstructor(t *testing.T) {
	_, err := NewScheduleServiceFromYAML([]byte(`instructors: []
classes:
  - id: x
    name: X
    day: monday
    start: "10:00"
    end: "11:00"
    instructor: ghost
    gi: true
    level: fundamental
`))
	assert.Error(t, err)
}
