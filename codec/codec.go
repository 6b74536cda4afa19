// SPDX-License-Identifier: MIT

// Package codec serialises matrices and tensors into compact, checksummed snapshots.
//
// Snapshot format (before compression):
//
//	[4 bytes: header length (big-endian)]
//	[header JSON: Header]
//	[payload: little-endian float64 pairs (re, im), row-major]
//
// The whole snapshot is zstd-compressed. Header.Digest is the blake3 hash of the
// payload; Decode rejects snapshots whose payload does not match it.
package codec

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/tensor"
)

const (
	HeaderLengthSize = 4
	MaxHeaderSize    = 1 << 20 // 1MB max header

	KindMatrix = "matrix"
	KindTensor = "tensor"

	formatVersion = 1
)

var (
	// ErrChecksum indicates a payload that does not match the header digest.
	ErrChecksum = errors.New("codec: checksum mismatch")
	// ErrFormat indicates a truncated or malformed snapshot.
	ErrFormat = errors.New("codec: malformed snapshot")
	// ErrKind indicates a snapshot of a different kind than requested.
	ErrKind = errors.New("codec: unexpected snapshot kind")
)

// Header describes a snapshot payload.
type Header struct {
	Version  int    `json:"version"`
	Kind     string `json:"kind"`
	Shape    []int  `json:"shape"`
	Abstract bool   `json:"abstract,omitempty"`
	Digest   string `json:"digest"`
}

// Option configures encoding.
type Option func(*options)

type options struct {
	level zstd.EncoderLevel
}

// WithCompression sets the zstd encoder level.
func WithCompression(level zstd.EncoderLevel) Option {
	return func(o *options) { o.level = level }
}

// ParseLevel maps "fastest", "default", "better" or "best" to a zstd level.
func ParseLevel(s string) (zstd.EncoderLevel, error) {
	ok, lvl := zstd.EncoderLevelFromString(s)
	if !ok {
		return 0, fmt.Errorf("codec: unknown compression level %q", s)
	}
	return lvl, nil
}

// EncodeMatrix writes m as a snapshot.
func EncodeMatrix(w io.Writer, m *matrix.Dense, opts ...Option) error {
	if m == nil {
		return fmt.Errorf("codec: %w", matrix.ErrNilMatrix)
	}
	r, c := m.Shape()
	data := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		row, err := m.RawRow(i)
		if err != nil {
			return fmt.Errorf("codec: %w", err)
		}
		data = append(data, row...)
	}
	return encode(w, Header{Kind: KindMatrix, Shape: []int{r, c}}, data, opts)
}

// DecodeMatrix reads a snapshot written by EncodeMatrix.
// Errors: ErrFormat, ErrChecksum, ErrKind.
func DecodeMatrix(r io.Reader) (*matrix.Dense, error) {
	h, data, err := decode(r)
	if err != nil {
		return nil, err
	}
	if h.Kind != KindMatrix || len(h.Shape) != 2 {
		return nil, fmt.Errorf("codec: %q with shape %v: %w", h.Kind, h.Shape, ErrKind)
	}
	if err := checkShape(h.Shape, len(data)); err != nil {
		return nil, err
	}
	rows, cols := h.Shape[0], h.Shape[1]
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	for k, v := range data {
		if err := m.Set(k/cols, k%cols, v); err != nil {
			return nil, fmt.Errorf("codec: %w", err)
		}
	}
	return m, nil
}

// EncodeTensor writes t as a snapshot; abstract tensors carry only their shape.
func EncodeTensor(w io.Writer, t *tensor.Tensor, opts ...Option) error {
	if t == nil {
		return fmt.Errorf("codec: %w", tensor.ErrNilTensor)
	}
	h := Header{Kind: KindTensor, Shape: t.Shape(), Abstract: t.IsAbstract()}
	return encode(w, h, t.Data(), opts)
}

// DecodeTensor reads a snapshot written by EncodeTensor.
// Errors: ErrFormat, ErrChecksum, ErrKind.
func DecodeTensor(r io.Reader) (*tensor.Tensor, error) {
	h, data, err := decode(r)
	if err != nil {
		return nil, err
	}
	if h.Kind != KindTensor {
		return nil, fmt.Errorf("codec: %q: %w", h.Kind, ErrKind)
	}
	if !h.Abstract {
		if err := checkShape(h.Shape, len(data)); err != nil {
			return nil, err
		}
	}
	var t *tensor.Tensor
	if h.Abstract {
		t, err = tensor.Placeholder(h.Shape...)
	} else {
		t, err = tensor.New(data, h.Shape...)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %v: %w", err, ErrFormat)
	}
	return t, nil
}

// checkShape reports ErrFormat unless shape holds exactly n values. The running
// product is compared against n before each step, so it never overflows.
func checkShape(shape []int, n int) error {
	if len(shape) == 0 {
		return fmt.Errorf("codec: empty shape: %w", ErrFormat)
	}
	prod := 1
	for _, d := range shape {
		if d <= 0 || prod > n/d {
			return fmt.Errorf("codec: shape %v for %d values: %w", shape, n, ErrFormat)
		}
		prod *= d
	}
	if prod != n {
		return fmt.Errorf("codec: shape %v for %d values: %w", shape, n, ErrFormat)
	}

	return nil
}

func encode(w io.Writer, h Header, data []complex128, opts []Option) error {
	o := options{level: zstd.SpeedDefault}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	payload := make([]byte, 16*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(payload[16*i:], math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(payload[16*i+8:], math.Float64bits(imag(v)))
	}
	sum := blake3.Sum256(payload)
	h.Version = formatVersion
	h.Digest = hex.EncodeToString(sum[:])

	headerJSON, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("codec: marshal header: %w", err)
	}

	var snap bytes.Buffer
	headerLen := make([]byte, HeaderLengthSize)
	binary.BigEndian.PutUint32(headerLen, uint32(len(headerJSON)))
	snap.Write(headerLen)
	snap.Write(headerJSON)
	snap.Write(payload)

	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(o.level))
	if err != nil {
		return fmt.Errorf("codec: creating zstd encoder: %w", err)
	}
	if _, err := encoder.Write(snap.Bytes()); err != nil {
		encoder.Close()
		return fmt.Errorf("codec: compressing: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("codec: closing encoder: %w", err)
	}
	return nil
}

func decode(r io.Reader) (Header, []complex128, error) {
	var h Header
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return h, nil, fmt.Errorf("codec: creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return h, nil, fmt.Errorf("codec: decompressing: %v: %w", err, ErrFormat)
	}
	if len(raw) < HeaderLengthSize {
		return h, nil, fmt.Errorf("codec: snapshot too small: %d bytes: %w", len(raw), ErrFormat)
	}
	headerLen := binary.BigEndian.Uint32(raw[:HeaderLengthSize])
	if headerLen > MaxHeaderSize || int(HeaderLengthSize+headerLen) > len(raw) {
		return h, nil, fmt.Errorf("codec: header length %d: %w", headerLen, ErrFormat)
	}
	if err := json.Unmarshal(raw[HeaderLengthSize:HeaderLengthSize+headerLen], &h); err != nil {
		return h, nil, fmt.Errorf("codec: parsing header: %v: %w", err, ErrFormat)
	}
	if h.Version != formatVersion {
		return h, nil, fmt.Errorf("codec: version %d: %w", h.Version, ErrFormat)
	}

	payload := raw[HeaderLengthSize+headerLen:]
	sum := blake3.Sum256(payload)
	if hex.EncodeToString(sum[:]) != h.Digest {
		return h, nil, ErrChecksum
	}
	if len(payload)%16 != 0 {
		return h, nil, fmt.Errorf("codec: payload of %d bytes: %w", len(payload), ErrFormat)
	}
	data := make([]complex128, len(payload)/16)
	for i := range data {
		re := math.Float64frombits(binary.LittleEndian.Uint64(payload[16*i:]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(payload[16*i+8:]))
		data[i] = complex(re, im)
	}
	return h, data, nil
}
