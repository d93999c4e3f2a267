package orient

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		code int
		info Info
	}{
		{code: 1, info: Info{Rotation: 0, Flipped: false}},
		{code: 2, info: Info{Rotation: 0, Flipped: true}},
		{code: 3, info: Info{Rotation: 180, Flipped: false}},
		{code: 4, info: Info{Rotation: 180, Flipped: true}},
		{code: 5, info: Info{Rotation: 90, Flipped: true}},
		{code: 6, info: Info{Rotation: 90, Flipped: false}},
		{code: 7, info: Info{Rotation: 270, Flipped: true}},
		{code: 8, info: Info{Rotation: 270, Flipped: false}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.code), func(t *testing.T) {
			info, ok := Lookup(tc.code)

			assert.True(t, ok)
			assert.Equal(t, tc.info, info)
		})
	}
}

// The 8 known codes map onto every {rotation, flipped} combination exactly
// once.
func TestLookup_CoversAllCombinations(t *testing.T) {
	seen := map[Info]int{}
	for code := 1; code <= 8; code++ {
		info, ok := Lookup(code)
		assert.True(t, ok)
		assert.Contains(t, []int{0, 90, 180, 270}, info.Rotation)
		seen[info]++
	}

	assert.Len(t, seen, 8)
	for info, count := range seen {
		assert.Equal(t, 1, count, info)
	}
}

func TestLookup_Missing(t *testing.T) {
	for _, code := range []int{-1, 0, 9, 42} {
		_, ok := Lookup(code)
		assert.False(t, ok, code)
	}
}
