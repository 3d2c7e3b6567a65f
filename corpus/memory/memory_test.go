package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rexgo/core"
	"github.com/hupe1980/rexgo/corpus"
	"github.com/hupe1980/rexgo/termlist"
)

// docEntries opens the document's term list and drains it.
func docEntries(t *testing.T, idx *Index, id core.DocID) []termlist.Entry {
	t.Helper()

	tl, err := idx.OpenTermList(id)
	require.NoError(t, err)

	var entries []termlist.Entry

	for {
		require.Nil(t, tl.Next())

		if tl.AtEnd() {
			break
		}

		entries = append(entries, termlist.Entry{
			Term:    tl.Term(),
			Freq:    tl.Freq(),
			DocFreq: tl.DocFreq(),
		})
	}

	require.NoError(t, tl.Close())

	return entries
}

func TestIndexAdd(t *testing.T) {
	idx := New()

	require.NoError(t, idx.Add(1, "The cat saw the cat"))
	require.NoError(t, idx.Add(2, "cat and dog"))

	assert.Equal(t, uint32(2), idx.DocCount())

	entries := docEntries(t, idx, 1)
	assert.Equal(t, []termlist.Entry{
		{Term: "cat", Freq: 2, DocFreq: 2},
		{Term: "saw", Freq: 1, DocFreq: 1},
		{Term: "the", Freq: 2, DocFreq: 1},
	}, entries)

	assert.Equal(t, uint64(3), idx.CollFreq("cat"))
	assert.Equal(t, uint64(1), idx.CollFreq("dog"))
	assert.Zero(t, idx.CollFreq("bird"))
}

func TestIndexAddTerms(t *testing.T) {
	idx := New()

	require.NoError(t, idx.AddTerms(7, map[string]uint32{
		"beta":  2,
		"alpha": 5,
		"":      3,
		"gone":  0,
	}))

	entries := docEntries(t, idx, 7)
	assert.Equal(t, []termlist.Entry{
		{Term: "alpha", Freq: 5, DocFreq: 1},
		{Term: "beta", Freq: 2, DocFreq: 1},
	}, entries)
}

func TestIndexReplace(t *testing.T) {
	idx := New()

	require.NoError(t, idx.Add(1, "old words here"))
	require.NoError(t, idx.Add(1, "new words"))

	assert.Equal(t, uint32(1), idx.DocCount())
	assert.Zero(t, idx.CollFreq("old"))
	assert.Equal(t, uint64(1), idx.CollFreq("new"))

	entries := docEntries(t, idx, 1)
	assert.Equal(t, []termlist.Entry{
		{Term: "new", Freq: 1, DocFreq: 1},
		{Term: "words", Freq: 1, DocFreq: 1},
	}, entries)
}

func TestIndexDelete(t *testing.T) {
	idx := New()

	require.NoError(t, idx.Add(1, "shared unique1"))
	require.NoError(t, idx.Add(2, "shared unique2"))

	require.NoError(t, idx.Delete(1))

	assert.Equal(t, uint32(1), idx.DocCount())
	assert.Equal(t, uint64(1), idx.CollFreq("shared"))
	assert.Zero(t, idx.CollFreq("unique1"))

	_, err := idx.OpenTermList(1)
	assert.ErrorIs(t, err, corpus.ErrDocNotFound)

	entries := docEntries(t, idx, 2)
	assert.Equal(t, []termlist.Entry{
		{Term: "shared", Freq: 1, DocFreq: 1},
		{Term: "unique2", Freq: 1, DocFreq: 1},
	}, entries)

	// Deleting an unknown document is a no-op.
	require.NoError(t, idx.Delete(99))
}

func TestIndexOpenMissing(t *testing.T) {
	idx := New()

	_, err := idx.OpenTermList(42)
	require.ErrorIs(t, err, corpus.ErrDocNotFound)

	var docErr *corpus.DocError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, core.DocID(42), docErr.ID)
}

func TestIndexOpenIsolatedFromMutation(t *testing.T) {
	idx := New()

	require.NoError(t, idx.Add(1, "stable view"))

	tl, err := idx.OpenTermList(1)
	require.NoError(t, err)

	// Mutations after open must not affect the already-opened list.
	require.NoError(t, idx.Delete(1))

	require.Nil(t, tl.Next())
	assert.Equal(t, "stable", tl.Term())

	require.NoError(t, tl.Close())
}

func TestIndexClosed(t *testing.T) {
	idx := New()

	require.NoError(t, idx.Add(1, "doc"))
	require.NoError(t, idx.Close())

	_, err := idx.OpenTermList(1)
	assert.ErrorIs(t, err, corpus.ErrClosed)

	assert.ErrorIs(t, idx.Add(2, "more"), corpus.ErrClosed)
	assert.ErrorIs(t, idx.Delete(1), corpus.ErrClosed)
}
