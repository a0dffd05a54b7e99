package logstore

import "io"

// Region is a byte-addressable persistent memory window. An I²C EEPROM
// driver (e.g. tinygo.org/x/drivers/at24cx) already satisfies the ReaderAt/
// WriterAt half; wiring code adds the capacity.
type Region interface {
	io.ReaderAt
	io.WriterAt
	Capacity() int
}

// MemRegion is a RAM-backed Region for host builds and tests.
type MemRegion struct {
	buf []byte
}

func NewMemRegion(size int) *MemRegion {
	return &MemRegion{buf: make([]byte, size)}
}

func (m *MemRegion) Capacity() int { return len(m.buf) }

func (m *MemRegion) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemRegion) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.buf)) {
		return 0, io.ErrShortWrite
	}
	n := copy(m.buf[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Bytes exposes the backing storage for tests.
func (m *MemRegion) Bytes() []byte { return m.buf }
