package quadrics

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec is the compression applied to a frozen grid's packed bits.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecZstd
	CodecGzip
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecGzip:
		return "gzip"
	}
	return "unknown"
}

func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "raw":
		return CodecNone, nil
	case "", "zstd":
		return CodecZstd, nil
	case "gzip", "gz":
		return CodecGzip, nil
	}
	return 0, errors.New("unknown codec").
		WithType(ErrTypeUnknownCodec).
		WithTag("codec", s)
}

// Compress encodes data with the codec.
func Compress(data []byte, c Codec) ([]byte, error) {
	switch c {
	case CodecNone:
		return append([]byte(nil), data...), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, errors.New("creating zstd encoder failed").Wrap(err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CodecGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, errors.New("creating gzip writer failed").Wrap(err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return nil, errors.New("gzip compression failed").Wrap(err)
		}
		if err := zw.Close(); err != nil {
			return nil, errors.New("gzip compression failed").Wrap(err)
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New("unknown codec").
		WithType(ErrTypeUnknownCodec).
		WithTag("codec", uint8(c))
}

// Decompress reverses Compress.
func Decompress(data []byte, c Codec) ([]byte, error) {
	return decompress(data, c, 0)
}

// decompress reverses Compress, failing once the output would exceed limit
// bytes. A limit <= 0 means no limit.
func decompress(data []byte, c Codec, limit int64) ([]byte, error) {
	var out []byte
	switch c {
	case CodecNone:
		out = append([]byte(nil), data...)
	case CodecZstd:
		opts := []zstd.DOption{}
		if limit > 0 {
			// small limits still get a window-sized budget; the exact bound is checked below
			opts = append(opts, zstd.WithDecoderMaxMemory(uint64(max(limit, minDecodeBudget))))
		}
		dec, err := zstd.NewReader(nil, opts...)
		if err != nil {
			return nil, errors.New("creating zstd decoder failed").Wrap(err)
		}
		defer dec.Close()
		if out, err = dec.DecodeAll(data, nil); err != nil {
			return nil, errors.New("zstd decompression failed").
				WithType(ErrTypeInvalidFrozen).
				Wrap(err)
		}
	case CodecGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.New("creating gzip reader failed").
				WithType(ErrTypeInvalidFrozen).
				Wrap(err)
		}
		defer zr.Close()
		var r io.Reader = zr
		if limit > 0 {
			r = io.LimitReader(zr, limit+1)
		}
		if out, err = io.ReadAll(r); err != nil {
			return nil, errors.New("gzip decompression failed").
				WithType(ErrTypeInvalidFrozen).
				Wrap(err)
		}
	default:
		return nil, errors.New("unknown codec").
			WithType(ErrTypeUnknownCodec).
			WithTag("codec", uint8(c))
	}
	if limit > 0 && int64(len(out)) > limit {
		return nil, errors.New("decompressed payload too large").
			WithType(ErrTypeInvalidFrozen).
			WithTag("limit", limit)
	}
	return out, nil
}

// Encode packs f with the codec, without a header.
func (f *Frozen) Encode(c Codec) ([]byte, error) {
	return Compress(f.bits, c)
}

// DecodeFrozen rebuilds a frozen grid from its bounds and an Encode stream.
func DecodeFrozen(b Bounds, data []byte, c Codec) (*Frozen, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	raw, err := decompress(data, c, packedLen(b.Volume()))
	if err != nil {
		return nil, err
	}
	return NewFrozen(b, raw)
}

// frozenHeader prefixes a frozen grid file. All integers are little-endian.
type frozenHeader struct {
	Magic   [4]byte
	Version uint8
	Codec   uint8
	Min     [3]int64
	Max     [3]int64
	Length  uint64 // payload bytes following the header
}

// WriteFrozen writes a header followed by the encoded bits.
func WriteFrozen(w io.Writer, f *Frozen, c Codec) error {
	payload, err := f.Encode(c)
	if err != nil {
		return err
	}
	h := frozenHeader{
		Version: frozenVersion,
		Codec:   uint8(c),
		Min:     [3]int64{f.Min.X, f.Min.Y, f.Min.Z},
		Max:     [3]int64{f.Max.X, f.Max.Y, f.Max.Z},
		Length:  uint64(len(payload)),
	}
	copy(h.Magic[:], frozenMagic)

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return errors.New("writing frozen header failed").Wrap(err)
	}
	if _, err := bw.Write(payload); err != nil {
		return errors.New("writing frozen payload failed").Wrap(err)
	}
	if err := bw.Flush(); err != nil {
		return errors.New("writing frozen payload failed").Wrap(err)
	}
	return nil
}

// ReadFrozen reads what WriteFrozen wrote.
func ReadFrozen(r io.Reader) (*Frozen, error) {
	var h frozenHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.New("reading frozen header failed").
			WithType(ErrTypeInvalidFrozen).
			Wrap(err)
	}
	if string(h.Magic[:]) != frozenMagic {
		return nil, errors.New("not a frozen grid").
			WithType(ErrTypeInvalidFrozen).
			WithTag("magic", string(h.Magic[:]))
	}
	if h.Version != frozenVersion {
		return nil, errors.New("unsupported frozen grid version").
			WithType(ErrTypeInvalidFrozen).
			WithTag("version", h.Version)
	}
	b := Bounds{
		Min: Coord{h.Min[0], h.Min[1], h.Min[2]},
		Max: Coord{h.Max[0], h.Max[1], h.Max[2]},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	// compressed output never needs much more than the raw bits
	raw := packedLen(b.Volume())
	if h.Length > uint64(raw+raw/8+1<<16) {
		return nil, errors.New("frozen payload too large").
			WithType(ErrTypeInvalidFrozen).
			WithTag("length", h.Length)
	}
	payload := make([]byte, h.Length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.New("reading frozen payload failed").
			WithType(ErrTypeInvalidFrozen).
			Wrap(err)
	}
	return DecodeFrozen(b, payload, Codec(h.Codec))
}

// SaveFrozen writes f to path, creating parent directories.
func SaveFrozen(path string, f *Frozen, c Codec) (err error) {
	defer func() {
		if err != nil {
			instrumentPersistError(err)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New("creating frozen grid directory failed").
			WithTag("path", path).
			Wrap(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.New("creating frozen grid file failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := WriteFrozen(file, f, c); err != nil {
		file.Close()
		return err
	}
	if err := syncClose(file); err != nil {
		return errors.New("closing frozen grid file failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

// syncClose flushes file to stable storage and closes it, returning the
// first error.
func syncClose(file *os.File) error {
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadFrozen reads a file written by SaveFrozen.
func LoadFrozen(path string) (f *Frozen, err error) {
	defer func() {
		if err != nil {
			instrumentPersistError(err)
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening frozen grid file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer file.Close()
	return ReadFrozen(bufio.NewReader(file))
}
