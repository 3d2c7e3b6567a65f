package termlist

// Entry is one term of a document together with its statistics.
type Entry struct {
	// Term is the term itself. Must be non-empty.
	Term string

	// Freq is the occurrence count of the term within the document.
	Freq uint32

	// DocFreq is the number of documents in the whole corpus containing
	// the term.
	DocFreq uint32
}

// FromEntries returns a TermList over the given entries. The entries must
// be sorted by Term in ascending order and free of duplicates; the slice is
// not copied and must not be mutated while the list is in use.
func FromEntries(entries []Entry) TermList {
	return &entryList{entries: entries, pos: -1}
}

type entryList struct {
	entries []Entry
	pos     int
}

func (l *entryList) Next() TermList {
	l.pos++
	return nil
}

func (l *entryList) AtEnd() bool {
	return l.pos >= len(l.entries)
}

func (l *entryList) Term() string {
	return l.entries[l.pos].Term
}

func (l *entryList) Freq() uint32 {
	return l.entries[l.pos].Freq
}

func (l *entryList) DocFreq() uint32 {
	return l.entries[l.pos].DocFreq
}

func (l *entryList) AccumulateStats(s *Stats) {
	e := l.entries[l.pos]
	s.RefDocFreq++
	s.FreqSum += uint64(e.Freq)
}

func (l *entryList) Close() error {
	return nil
}
