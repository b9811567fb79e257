package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiers_Geometry(t *testing.T) {
	want := map[string][2]int64{
		"8k": {101865600, 101865592},
		"4k": {24883200, 24883192},
		"2k": {11059200, 11059192},
		"1k": {6220800, 6220792},
	}

	assert := assert.New(t)
	for i, tier := range Tiers {
		w, ok := want[tier.Name]
		assert.True(ok, "unexpected tier %q", tier.Name)
		assert.Equal(w[0], tier.Total, tier.Name)
		assert.Equal(w[1], tier.Usable, tier.Name)
		if i > 0 {
			assert.Greater(Tiers[i-1].Usable, tier.Usable, "tiers not descending at %d", i)
		}
	}
	assert.Equal("1k", Floor().Name)
}

func TestSelectStrategy(t *testing.T) {
	floor := Floor()
	cases := []struct {
		size  int64
		tier  string
		count int
	}{
		{0, "1k", 1},
		{1, "1k", 1},
		{floor.Usable - 1, "1k", 1},
		{floor.Usable, "1k", 1},
		{floor.Usable + 1, "1k", 2},
		{6220793, "1k", 2},
		{11059192, "2k", 1},
		{24883192*3 + 5, "4k", 4},
		{101865592, "8k", 1},
		{101865592*2 + 1, "8k", 3},
	}

	assert := assert.New(t)
	for _, tc := range cases {
		s := SelectStrategy(tc.size)
		assert.Equal(tc.tier, s.Tier.Name, "size %d", tc.size)
		assert.Equal(tc.count, s.ChunkCount, "size %d", tc.size)
		assert.GreaterOrEqual(int64(s.ChunkCount)*s.Tier.Usable, tc.size, "size %d not covered", tc.size)
	}
}

func TestSelectStrategy_Monotonic(t *testing.T) {
	var sizes []int64
	for _, tier := range Tiers {
		sizes = append(sizes, tier.Usable+1, tier.Usable, tier.Usable-1)
	}
	sizes = append(sizes, 1, 0)

	assert := assert.New(t)
	prev := SelectStrategy(sizes[0]).Tier.Usable
	for _, size := range sizes[1:] {
		s := SelectStrategy(size)
		assert.LessOrEqual(s.Tier.Usable, prev, "size %d: tier capacity grew", size)
		assert.GreaterOrEqual(s.ChunkCount, 1, "size %d", size)
		prev = s.Tier.Usable
	}
}

func TestIDWidth(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 1, 10: 1, 11: 2, 12: 2, 100: 2, 101: 3}

	assert := assert.New(t)
	for count, want := range cases {
		assert.Equal(want, IDWidth(count), "IDWidth(%d)", count)
	}
}

func TestDigits(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Digits(0))
	assert.Equal(1, Digits(9))
	assert.Equal(2, Digits(int64(10)))
	assert.Equal(7, Digits(uint64(1234567)))
	assert.Equal(2, Digits(-42))
}
