package termlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	term string
	freq uint32
}

// drain walks the tree to exhaustion, collecting every emitted term, and
// closes whatever root is left.
func drain(t *testing.T, root TermList) []emitted {
	t.Helper()

	var out []emitted

	for {
		root = Advance(root)
		if root.AtEnd() {
			break
		}

		out = append(out, emitted{term: root.Term(), freq: root.Freq()})
	}

	require.NoError(t, root.Close())

	return out
}

// countingList wraps a term list and counts how often it is closed.
type countingList struct {
	TermList
	closed *int
}

func (c *countingList) Close() error {
	*c.closed++
	return c.TermList.Close()
}

func TestFromEntries(t *testing.T) {
	entries := []Entry{
		{Term: "apple", Freq: 2, DocFreq: 10},
		{Term: "pear", Freq: 1, DocFreq: 4},
	}

	tl := FromEntries(entries)

	require.Nil(t, tl.Next())
	require.False(t, tl.AtEnd())
	assert.Equal(t, "apple", tl.Term())
	assert.Equal(t, uint32(2), tl.Freq())
	assert.Equal(t, uint32(10), tl.DocFreq())

	var s Stats
	tl.AccumulateStats(&s)
	assert.Equal(t, uint32(1), s.RefDocFreq)
	assert.Equal(t, uint64(2), s.FreqSum)

	require.Nil(t, tl.Next())
	assert.Equal(t, "pear", tl.Term())

	require.Nil(t, tl.Next())
	assert.True(t, tl.AtEnd())

	require.NoError(t, tl.Close())
}

func TestMerge(t *testing.T) {
	t.Run("single list", func(t *testing.T) {
		tl := Merge([]TermList{FromEntries([]Entry{{Term: "solo", Freq: 1}})})

		got := drain(t, tl)
		assert.Equal(t, []emitted{{term: "solo", freq: 1}}, got)
	})

	t.Run("union of two", func(t *testing.T) {
		a := FromEntries([]Entry{
			{Term: "bird", Freq: 2, DocFreq: 5},
			{Term: "cat", Freq: 3, DocFreq: 7},
		})
		b := FromEntries([]Entry{
			{Term: "cat", Freq: 1, DocFreq: 7},
			{Term: "dog", Freq: 4, DocFreq: 2},
		})

		got := drain(t, Merge([]TermList{a, b}))
		assert.Equal(t, []emitted{
			{term: "bird", freq: 2},
			{term: "cat", freq: 4},
			{term: "dog", freq: 4},
		}, got)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := FromEntries([]Entry{{Term: "a", Freq: 1}, {Term: "c", Freq: 1}})
		b := FromEntries([]Entry{{Term: "b", Freq: 1}, {Term: "d", Freq: 1}})

		got := drain(t, Merge([]TermList{a, b}))
		assert.Equal(t, []emitted{
			{term: "a", freq: 1},
			{term: "b", freq: 1},
			{term: "c", freq: 1},
			{term: "d", freq: 1},
		}, got)
	})

	t.Run("identical single-term lists", func(t *testing.T) {
		a := FromEntries([]Entry{{Term: "x", Freq: 1}})
		b := FromEntries([]Entry{{Term: "x", Freq: 2}})

		got := drain(t, Merge([]TermList{a, b}))
		assert.Equal(t, []emitted{{term: "x", freq: 3}}, got)
	})

	t.Run("shared across three", func(t *testing.T) {
		lists := []TermList{
			FromEntries([]Entry{{Term: "go", Freq: 1}, {Term: "heap", Freq: 2}}),
			FromEntries([]Entry{{Term: "go", Freq: 2}}),
			FromEntries([]Entry{{Term: "go", Freq: 4}, {Term: "tree", Freq: 1}}),
		}

		got := drain(t, Merge(lists))
		assert.Equal(t, []emitted{
			{term: "go", freq: 7},
			{term: "heap", freq: 2},
			{term: "tree", freq: 1},
		}, got)
	})

	t.Run("five lists stay sorted", func(t *testing.T) {
		lists := []TermList{
			FromEntries([]Entry{{Term: "e", Freq: 1}}),
			FromEntries([]Entry{{Term: "d", Freq: 1}}),
			FromEntries([]Entry{{Term: "c", Freq: 1}}),
			FromEntries([]Entry{{Term: "b", Freq: 1}}),
			FromEntries([]Entry{{Term: "a", Freq: 1}}),
		}

		got := drain(t, Merge(lists))

		terms := make([]string, 0, len(got))
		for _, e := range got {
			terms = append(terms, e.term)
		}

		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, terms)
	})

	t.Run("empty input panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Merge(nil)
		})
	})
}

func TestMergeStats(t *testing.T) {
	lists := []TermList{
		FromEntries([]Entry{{Term: "cat", Freq: 3, DocFreq: 9}, {Term: "dog", Freq: 1, DocFreq: 6}}),
		FromEntries([]Entry{{Term: "bird", Freq: 2, DocFreq: 4}, {Term: "cat", Freq: 1, DocFreq: 9}}),
	}

	root := Merge(lists)

	want := map[string]Stats{
		"bird": {RefDocFreq: 1, FreqSum: 2},
		"cat":  {RefDocFreq: 2, FreqSum: 4},
		"dog":  {RefDocFreq: 1, FreqSum: 1},
	}

	for {
		root = Advance(root)
		if root.AtEnd() {
			break
		}

		var s Stats
		root.AccumulateStats(&s)
		assert.Equal(t, want[root.Term()], s, "stats for %q", root.Term())
	}

	require.NoError(t, root.Close())
}

func TestMergeDocFreq(t *testing.T) {
	lists := []TermList{
		FromEntries([]Entry{{Term: "cat", Freq: 3, DocFreq: 9}}),
		FromEntries([]Entry{{Term: "cat", Freq: 1, DocFreq: 9}, {Term: "dog", Freq: 2, DocFreq: 6}}),
	}

	root := Merge(lists)

	root = Advance(root)
	require.Equal(t, "cat", root.Term())
	assert.Equal(t, uint32(9), root.DocFreq())

	root = Advance(root)
	require.Equal(t, "dog", root.Term())
	assert.Equal(t, uint32(6), root.DocFreq())

	root = Advance(root)
	require.True(t, root.AtEnd())
	require.NoError(t, root.Close())
}

func TestAdvanceReleasesReplacedNodes(t *testing.T) {
	closes := make([]int, 3)

	lists := []TermList{
		&countingList{
			TermList: FromEntries([]Entry{{Term: "a", Freq: 1}, {Term: "b", Freq: 1}, {Term: "c", Freq: 1}}),
			closed:   &closes[0],
		},
		&countingList{
			TermList: FromEntries([]Entry{{Term: "b", Freq: 1}}),
			closed:   &closes[1],
		},
		&countingList{
			TermList: FromEntries([]Entry{{Term: "c", Freq: 1}, {Term: "d", Freq: 1}}),
			closed:   &closes[2],
		},
	}

	got := drain(t, Merge(lists))

	terms := make([]string, 0, len(got))
	for _, e := range got {
		terms = append(terms, e.term)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, terms)

	for i, n := range closes {
		assert.Equalf(t, 1, n, "list %d close count", i)
	}
}
