package memory

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/rexgo/blobstore"
	"github.com/hupe1980/rexgo/core"
	"github.com/hupe1980/rexgo/corpus"
)

// CompressionType defines the compression algorithm used for snapshots.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

var (
	// ErrInvalidMagic is returned when snapshot data does not start with
	// the snapshot magic.
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrInvalidVersion is returned for unsupported snapshot versions.
	ErrInvalidVersion = errors.New("unsupported snapshot version")
)

var (
	snapshotMagic   = [4]byte{'R', 'X', 'S', '0'}
	snapshotVersion = uint16(1)
)

// Snapshot layout: 4-byte magic, uint16 version, compression type byte,
// one reserved byte, then a single block in
// [uncompressedSize uint32][compressedSize uint32][data] form. A
// compressedSize of 0 means the payload is stored uncompressed.
const (
	snapshotHeaderSize = 8
	blockHeaderSize    = 8
)

// SnapshotOptions configures snapshot writing.
type SnapshotOptions struct {
	// Compression selects the payload compression. Defaults to ZSTD.
	Compression CompressionType
}

// WithCompression sets the snapshot payload compression.
func WithCompression(ct CompressionType) func(*SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.Compression = ct
	}
}

type snapshotTerm struct {
	Term string
	Freq uint32
}

type snapshotDoc struct {
	ID    uint32
	Terms []snapshotTerm
}

type snapshotPayload struct {
	Docs []snapshotDoc
}

// SaveToWriter writes a snapshot of the index to w.
func (idx *Index) SaveToWriter(w io.Writer, optFns ...func(*SnapshotOptions)) error {
	opts := SnapshotOptions{Compression: CompressionZSTD}
	for _, fn := range optFns {
		fn(&opts)
	}

	payload, err := idx.encodePayload()
	if err != nil {
		return err
	}

	block, err := compressBlock(payload, opts.Compression)
	if err != nil {
		return err
	}

	header := make([]byte, snapshotHeaderSize)
	copy(header, snapshotMagic[:])
	binary.LittleEndian.PutUint16(header[4:6], snapshotVersion)
	header[6] = byte(opts.Compression)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}

	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}

	return nil
}

func (idx *Index) encodePayload() ([]byte, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return nil, corpus.ErrClosed
	}

	p := snapshotPayload{Docs: make([]snapshotDoc, 0, len(idx.forward))}
	for id, terms := range idx.forward {
		doc := snapshotDoc{ID: uint32(id), Terms: make([]snapshotTerm, len(terms))}
		for i, dt := range terms {
			doc.Terms[i] = snapshotTerm{Term: dt.term, Freq: dt.freq}
		}

		p.Docs = append(p.Docs, doc)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return buf.Bytes(), nil
}

// LoadFromReader reads a snapshot and returns the reconstructed index.
func LoadFromReader(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if len(data) < snapshotHeaderSize {
		return nil, ErrInvalidMagic
	}

	if [4]byte(data[:4]) != snapshotMagic {
		return nil, ErrInvalidMagic
	}

	if v := binary.LittleEndian.Uint16(data[4:6]); v != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}

	ct := CompressionType(data[6])

	payload, err := decompressBlock(data[snapshotHeaderSize:], ct)
	if err != nil {
		return nil, err
	}

	var p snapshotPayload
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	idx := New()
	for _, doc := range p.Docs {
		freqs := make(map[string]uint32, len(doc.Terms))
		for _, st := range doc.Terms {
			freqs[st.Term] += st.Freq
		}

		if err := idx.AddTerms(core.DocID(doc.ID), freqs); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// SaveToStore writes a snapshot of the index to a blob store.
func (idx *Index) SaveToStore(ctx context.Context, store blobstore.Store, name string, optFns ...func(*SnapshotOptions)) error {
	var buf bytes.Buffer
	if err := idx.SaveToWriter(&buf, optFns...); err != nil {
		return err
	}

	return store.Put(ctx, name, buf.Bytes())
}

// LoadFromStore reads a snapshot from a blob store.
func LoadFromStore(ctx context.Context, store blobstore.Store, name string) (*Index, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, err
	}

	return LoadFromReader(bytes.NewReader(data))
}

// ZSTD encoder/decoder pools shared across snapshot operations.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}

	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))

	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}

	dec, _ := zstd.NewReader(nil)

	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compressBlock compresses data with the given algorithm, prefixing the
// block header. Incompressible payloads (ratio > 0.9) are stored raw.
func compressBlock(data []byte, ct CompressionType) ([]byte, error) {
	var compressed []byte

	switch ct {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)

		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}

		// n == 0 means incompressible.
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)

		compressed = enc.EncodeAll(data, nil)
	case CompressionNone:
	default:
		return nil, fmt.Errorf("unknown compression type: %d", ct)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = stored raw
		copy(result[blockHeaderSize:], data)

		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)

	return result, nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, ct CompressionType) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, errors.New("block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < blockHeaderSize+uncompressedSize {
			return nil, errors.New("block data too small")
		}

		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)) < blockHeaderSize+compressedSize {
		return nil, errors.New("compressed block data too small")
	}

	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch ct {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}

		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}

		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}

		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}

		return decoded, nil
	default:
		return nil, fmt.Errorf("unknown compression type: %d", ct)
	}
}
