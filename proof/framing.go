// Package proof implements the clause-event tracer dialects spec §4.10
// describes: DRAT, FRAT, LRAT, VeriPB, and IDRUP. Every dialect type here
// satisfies sat.Tracer structurally; this package imports sat, and sat
// never imports proof.
package proof

import (
	"bufio"
	"io"

	"github.com/xDarkicex/cadical-go/core"
)

// Framing picks how a dialect serializes integers: binary DRAT uses 7-bit
// base-128 varints with zigzag sign encoding, while ASCII DRAT and FRAT/
// LRAT/VeriPB/IDRUP use plain ASCII decimal tokens (spec §4.10).
type Framing int

const (
	FramingASCII Framing = iota
	FramingBinary
)

// writer wraps a buffered io.Writer with both framing styles so dialect
// types can mix and match per spec (e.g. binary DRAT still writes its
// leading 'a'/'d' tag as a raw byte, not a varint).
type writer struct {
	w       *bufio.Writer
	framing Framing
}

func newWriter(w io.Writer, framing Framing) *writer {
	return &writer{w: bufio.NewWriter(w), framing: framing}
}

// WriteVarint writes n zigzag-encoded as 7-bit base-128 groups, matching
// CaDiCaL's binary DRAT framing.
func (w *writer) WriteVarint(n int64) error {
	u := zigzagEncode(n)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		if err := w.w.WriteByte(b); err != nil {
			return err
		}
		if u == 0 {
			return nil
		}
	}
}

func zigzagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ReadVarint reads one zigzag base-128 varint back, the inverse of
// WriteVarint; used by replay tooling and tests, not the tracers
// themselves (those only write).
func ReadVarint(r *bufio.Reader) (int64, error) {
	var u uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		u |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return zigzagDecode(u), nil
}

// WriteByte writes a single raw byte (DRAT/FRAT tag bytes).
func (w *writer) WriteByte(b byte) error { return w.w.WriteByte(b) }

// WriteASCIILits writes a space-separated, zero-terminated DIMACS literal
// list, the framing ASCII DRAT and IDRUP use.
func (w *writer) WriteASCIILits(lits []int32) error {
	for _, l := range lits {
		if _, err := w.w.WriteString(itoa(l)); err != nil {
			return err
		}
		if err := w.w.WriteByte(' '); err != nil {
			return err
		}
	}
	_, err := w.w.WriteString("0\n")
	return err
}

func itoa(n int32) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (w *writer) Flush() error { return w.w.Flush() }

// Close flushes and, if the underlying writer is an io.Closer, closes it;
// boundary I/O errors are wrapped per spec §7.
func (w *writer) Close(underlying io.Writer) error {
	if err := w.Flush(); err != nil {
		return core.Wrap(err, "proof: flushing trace")
	}
	if c, ok := underlying.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return core.Wrap(err, "proof: closing trace file")
		}
	}
	return nil
}
