package dat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// maxVectorLen bounds the element count a single Load will allocate for,
// so a corrupt or adversarial stream cannot make Load attempt a
// multi-exabyte allocation before the short read that would otherwise
// report it as a DecodingError.
const maxVectorLen = 1 << 32

// Save writes t's two arrays to w in the wire layout documented in
// SPEC_FULL.md §4.F: each vector is a little-endian uint64 element count
// followed by that many little-endian elements, base (signed int32) then
// check (unsigned uint32).
func (t *Trie) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := writeVector(bw, t.base); err != nil {
		return err
	}
	if err := writeVectorU(bw, t.check); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func writeVector(w *bufio.Writer, v []int32) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
		return &TransportError{Err: err}
	}
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func writeVectorU(w *bufio.Writer, v []uint32) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
		return &TransportError{Err: err}
	}
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// Load reads a snapshot written by Save and reconstructs a *Trie. It
// reports a *DecodingError for any stream that does not parse as the
// layout in §4.F (short read, truncated vector, an element count too
// large to be a real snapshot), and a *TransportError if the underlying
// reader itself fails.
func Load(r io.Reader) (*Trie, error) {
	br := bufio.NewReader(r)

	base, err := readVector(br)
	if err != nil {
		return nil, err
	}
	check, err := readVectorU(br)
	if err != nil {
		return nil, err
	}

	return &Trie{base: base, check: check}, nil
}

func readVector(r *bufio.Reader) ([]int32, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, decodeOrTransport(err)
	}
	return out, nil
}

func readVectorU(r *bufio.Reader) ([]uint32, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, decodeOrTransport(err)
	}
	return out, nil
}

func readCount(r *bufio.Reader) (uint64, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, decodeOrTransport(err)
	}
	if n > maxVectorLen {
		return 0, &DecodingError{Err: fmt.Errorf("vector length %d exceeds maximum %d", n, maxVectorLen)}
	}
	return n, nil
}

// decodeOrTransport classifies a read failure: io.EOF and
// io.ErrUnexpectedEOF mean the stream itself is short or truncated (a
// decoding problem), anything else is the reader misbehaving (a
// transport problem).
func decodeOrTransport(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &DecodingError{Err: err}
	}
	return &TransportError{Err: err}
}
