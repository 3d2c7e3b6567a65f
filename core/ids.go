package core

// DocID is the stable identifier of a document in the corpus.
// It is strictly 32-bit so reference sets can be held in roaring bitmaps
// and per-document statistics stay compact.
type DocID uint32

// MaxDocID is the maximum possible value for a DocID.
const MaxDocID = ^DocID(0)
