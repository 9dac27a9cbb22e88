package ljson

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// CompressMode selects how EncodeSnapshot compresses the string/key bytes
// of a binary snapshot: light, fast compression by default, with the
// option to trade CPU for a smaller result or skip compression entirely.
type CompressMode uint8

const (
	// CompressNone stores string bytes uncompressed.
	CompressNone CompressMode = iota
	// CompressFast applies s2 (a fast Snappy-compatible codec).
	CompressFast
	// CompressBest applies zstd, which compresses smaller at the cost of
	// more CPU, worthwhile for snapshots that are written once and read
	// many times (a cache entry, a build artifact).
	CompressBest
)

const snapshotMagic = "LJS1"

const (
	snapTagNull byte = iota
	snapTagFalse
	snapTagTrue
	snapTagNumber
	snapTagString
	snapTagArray
	snapTagObject
)

// EncodeSnapshot walks v once, producing a compact binary form: a flat tag
// stream (one byte per node, with inline fixed-width payloads for scalars
// and string/key references into a separate byte pool) plus that byte
// pool, which is compressed per mode. It is not a JSON text; it exists as
// a cache/transport format for trees that are parsed once and reused, so
// the cost of the textual parse is paid only the first time.
func EncodeSnapshot(v *Value, mode CompressMode) ([]byte, error) {
	var tags []byte
	var pool []byte

	var walk func(v *Value)
	walk = func(v *Value) {
		switch v.typ {
		case TypeNull:
			tags = append(tags, snapTagNull)
		case TypeFalse:
			tags = append(tags, snapTagFalse)
		case TypeTrue:
			tags = append(tags, snapTagTrue)
		case TypeNumber:
			tags = append(tags, snapTagNumber)
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.num))
			tags = append(tags, buf[:]...)
		case TypeString:
			tags = append(tags, snapTagString)
			tags = appendUvarint(tags, uint64(len(pool)))
			tags = appendUvarint(tags, uint64(len(v.str)))
			pool = append(pool, v.str...)
		case TypeArray:
			tags = append(tags, snapTagArray)
			tags = appendUvarint(tags, uint64(len(v.arr)))
			for i := range v.arr {
				walk(&v.arr[i])
			}
		case TypeObject:
			tags = append(tags, snapTagObject)
			tags = appendUvarint(tags, uint64(len(v.obj)))
			for i := range v.obj {
				tags = appendUvarint(tags, uint64(len(pool)))
				tags = appendUvarint(tags, uint64(len(v.obj[i].Key)))
				pool = append(pool, v.obj[i].Key...)
				walk(&v.obj[i].Value)
			}
		}
	}
	walk(v)

	compressedPool, err := compressPool(pool, mode)
	if err != nil {
		return nil, fmt.Errorf("ljson: encode snapshot: %w", err)
	}

	out := make([]byte, 0, len(snapshotMagic)+1+8+8+len(tags)+len(compressedPool))
	out = append(out, snapshotMagic...)
	out = append(out, byte(mode))
	out = appendUvarint(out, uint64(len(tags)))
	out = appendUvarint(out, uint64(len(pool)))
	out = append(out, tags...)
	out = append(out, compressedPool...)
	return out, nil
}

// DecodeSnapshot reverses EncodeSnapshot.
func DecodeSnapshot(b []byte) (*Value, error) {
	if len(b) < len(snapshotMagic)+1 || string(b[:len(snapshotMagic)]) != snapshotMagic {
		return nil, errors.New("ljson: decode snapshot: bad magic")
	}
	b = b[len(snapshotMagic):]
	mode := CompressMode(b[0])
	b = b[1:]

	tagsLen, n := binary.Uvarint(b)
	b = b[n:]
	poolLen, n := binary.Uvarint(b)
	b = b[n:]

	if uint64(len(b)) < tagsLen {
		return nil, errors.New("ljson: decode snapshot: truncated tag stream")
	}
	tags := b[:tagsLen]
	compressedPool := b[tagsLen:]

	pool, err := decompressPool(compressedPool, mode, int(poolLen))
	if err != nil {
		return nil, fmt.Errorf("ljson: decode snapshot: %w", err)
	}

	pos := 0
	var decode func() (*Value, error)
	decode = func() (*Value, error) {
		if pos >= len(tags) {
			return nil, errors.New("ljson: decode snapshot: truncated tag stream")
		}
		tag := tags[pos]
		pos++
		v := &Value{}
		switch tag {
		case snapTagNull:
			v.typ = TypeNull
		case snapTagFalse:
			v.typ = TypeFalse
		case snapTagTrue:
			v.typ = TypeTrue
		case snapTagNumber:
			if pos+8 > len(tags) {
				return nil, errors.New("ljson: decode snapshot: truncated number")
			}
			v.typ = TypeNumber
			v.num = math.Float64frombits(binary.LittleEndian.Uint64(tags[pos : pos+8]))
			pos += 8
		case snapTagString:
			off, n := binary.Uvarint(tags[pos:])
			pos += n
			l, n := binary.Uvarint(tags[pos:])
			pos += n
			if off+l > uint64(len(pool)) {
				return nil, errors.New("ljson: decode snapshot: string out of range")
			}
			v.typ = TypeString
			v.str = append([]byte(nil), pool[off:off+l]...)
		case snapTagArray:
			size, n := binary.Uvarint(tags[pos:])
			pos += n
			v.SetArray(int(size))
			for i := uint64(0); i < size; i++ {
				elem, err := decode()
				if err != nil {
					return nil, err
				}
				v.arr = append(v.arr, *elem)
			}
		case snapTagObject:
			size, n := binary.Uvarint(tags[pos:])
			pos += n
			v.SetObject(int(size))
			for i := uint64(0); i < size; i++ {
				off, n := binary.Uvarint(tags[pos:])
				pos += n
				l, n := binary.Uvarint(tags[pos:])
				pos += n
				if off+l > uint64(len(pool)) {
					return nil, errors.New("ljson: decode snapshot: key out of range")
				}
				key := append([]byte(nil), pool[off:off+l]...)
				elem, err := decode()
				if err != nil {
					return nil, err
				}
				v.obj = append(v.obj, Member{Key: key, Value: *elem})
			}
		default:
			return nil, fmt.Errorf("ljson: decode snapshot: unknown tag %d", tag)
		}
		return v, nil
	}

	root, err := decode()
	if err != nil {
		return nil, err
	}
	return root, nil
}

func compressPool(pool []byte, mode CompressMode) ([]byte, error) {
	switch mode {
	case CompressNone:
		return pool, nil
	case CompressFast:
		return s2.Encode(nil, pool), nil
	case CompressBest:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(pool, nil), nil
	default:
		return nil, fmt.Errorf("unknown compress mode %d", mode)
	}
}

func decompressPool(compressed []byte, mode CompressMode, originalLen int) ([]byte, error) {
	switch mode {
	case CompressNone:
		return compressed, nil
	case CompressFast:
		return s2.Decode(make([]byte, 0, originalLen), compressed)
	case CompressBest:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(compressed, make([]byte, 0, originalLen))
	default:
		return nil, fmt.Errorf("unknown compress mode %d", mode)
	}
}

func appendUvarint(dst []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	return append(dst, buf[:n]...)
}
