package chunker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faanross/simulacra_png/internal/layout"
)

func TestPlan_Remainder(t *testing.T) {
	chunks := Plan(6220793, layout.SelectStrategy(6220793))

	assert := assert.New(t)
	assert.Equal([]Chunk{
		{Index: 0, Offset: 0, Length: 6220792},
		{Index: 1, Offset: 6220792, Length: 1},
	}, chunks)
}

func TestPlan_EvenAndEmpty(t *testing.T) {
	tier := layout.Floor()
	s := layout.Strategy{ChunkCount: 3, Tier: tier}

	assert := assert.New(t)
	var total int64
	for i, c := range Plan(tier.Usable*3, s) {
		assert.Equal(Chunk{Index: i, Offset: total, Length: int(tier.Usable)}, c)
		total += int64(c.Length)
	}
	assert.Equal(tier.Usable*3, total)

	assert.Equal([]Chunk{{Index: 0, Offset: 0, Length: 0}}, Plan(0, layout.SelectStrategy(0)))
}

func ids(entries []Entry) []uint64 {
	out := make([]uint64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func entriesFor(idList ...uint64) []Entry {
	out := make([]Entry, len(idList))
	for i, id := range idList {
		out[i] = Entry{Path: "p", ID: id, Ext: "png"}
	}
	return out
}

func TestOrder(t *testing.T) {
	want := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	cases := map[string][]uint64{
		"already ordered": want,
		"reversed":        {11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		"lexicographic":   {0, 1, 10, 11, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	shuffled := append([]uint64(nil), want...)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	cases["scrambled"] = shuffled

	assert := assert.New(t)
	for name, in := range cases {
		assert.Equal(want, ids(Order(entriesFor(in...))), name)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	in := entriesFor(2, 0, 1)
	Order(in)

	assert.Equal(t, []uint64{2, 0, 1}, ids(in))
}

func TestFindMissing(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(FindMissing(entriesFor(0, 1, 2)))
	assert.Equal([]uint64{0, 2}, FindMissing(entriesFor(1, 3, 4)))
	assert.Nil(FindMissing(nil))
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)
	assert.Contains(Describe(0, layout.SelectStrategy(0)), "overhead n/a")
	assert.Contains(Describe(6220793, layout.SelectStrategy(6220793)), "2 x 1k")
}
