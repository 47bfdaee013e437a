package generics

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{1, 2, 3}, func(e int) string { return strconv.Itoa(e * 2) })
	assert.Equal(t, []string{"2", "4", "6"}, got)
	assert.Empty(t, SliceMap(nil, func(e int) int { return e }))
}

func TestSet(t *testing.T) {
	s := MakeSet[int]()
	assert.False(t, s.Has(3))
	s.Insert(3, 7)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith("a", "b")
	assert.True(t, s2.Has("a"))
	assert.Len(t, s2, 2)
}
