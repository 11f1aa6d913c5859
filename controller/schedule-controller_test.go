package controller

import (
	"dojo/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchedule(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/schedule?day=thursday", nil)
	require.Equal(t, 200, w.Code)
	classes := decode[[]service.Class](t, w)
	require.Len(t, classes, 2)
	assert.Equal(t, "18:00", classes[0].Start)

	w = ts.do(t, "GET", "/api/schedule?day=caturday", nil)
	assert.Equal(t, 400, w.Code)
}

func TestGetInstructor(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/instructors/kenji-mori", nil)
	require.Equal(t, 200, w.Code)
	resp := decode[struct {
		Name    string          `json:"name"`
		Classes []service.Class `json:"classes"`
	}](t, w)
	assert.Equal(t, "Kenji Mori", resp.Name)
	assert.Len(t, resp.Classes, 2)

	w = ts.do(t, "GET", "/api/instructors/nobody", nil)
	assert.Equal(t, 404, w.Code)
}
