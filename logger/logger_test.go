package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(-1))

	_, err = New("development", "loud")
	assert.Error(t, err)
}

func TestSetDefault(t *testing.T) {
	l, err := New("development", "")
	require.NoError(t, err)
	SetDefault(l)
	assert.Same(t, l, Default())
}
