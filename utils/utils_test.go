package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(i int) int { return i * 2 }))
	assert.Empty(t, Map([]int{}, func(i int) string { return "" }))
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.NotNil(t, Filter([]int{1}, func(int) bool { return false }))
}

func TestFind(t *testing.T) {
	v, ok := Find([]string{"a", "bb", "cc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)

	_, ok = Find([]string{"a"}, func(s string) bool { return s == "z" })
	assert.False(t, ok)
}
