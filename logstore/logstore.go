// logstore/logstore.go
package logstore

import (
	"encoding/binary"
	"errors"

	"luxlogger-go/errcode"
)

// Sentinels double as bus-facing codes via errcode.Of.
var (
	ErrFull           error = errcode.StoreFull
	ErrEmpty          error = errcode.StoreEmpty
	ErrRegionTooSmall       = errors.New("region too small for one record")
)

// Store is a fixed-capacity append-only record log over a Region. It owns
// the persisted write index and the record encoding. Single caller by
// contract; there is no internal locking.
type Store struct {
	region    Region
	max       uint16
	count     uint16
	recovered bool

	buf [RecordSize]byte // scratch, avoids per-append allocation
}

// Open derives the slot capacity from the region size, reads the persisted
// write index and recovers a corrupt one (index > capacity) by resetting it
// to 0. Record bytes are never erased; a reset index logically empties the
// log and later appends overwrite old slots.
func Open(region Region) (*Store, error) {
	if region.Capacity() < HeaderSize+RecordSize {
		return nil, ErrRegionTooSmall
	}
	slots := (region.Capacity() - HeaderSize) / RecordSize
	if slots > 0xFFFF {
		slots = 0xFFFF
	}
	s := &Store{region: region, max: uint16(slots)}

	idx, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	if idx > s.max {
		if err := s.writeIndex(0); err != nil {
			return nil, err
		}
		idx = 0
		s.recovered = true
	}
	s.count = idx
	return s, nil
}

// Recovered reports whether Open found a corrupt index and reset it.
func (s *Store) Recovered() bool { return s.recovered }

// Count returns the number of records appended so far; it is also the next
// free slot number.
func (s *Store) Count() uint16 { return s.count }

// MaxLogs returns the slot capacity derived at Open.
func (s *Store) MaxLogs() uint16 { return s.max }

// Append serializes r into the next free slot and persists the incremented
// write index. Fails with ErrFull at capacity; never overwrites, never
// wraps. A crash between the record write and the index write loses at most
// the record being appended.
func (s *Store) Append(r Record) error {
	if s.count == s.max {
		return ErrFull
	}
	r.encode(s.buf[:])
	off := int64(HeaderSize) + int64(s.count)*RecordSize
	if _, err := s.region.WriteAt(s.buf[:], off); err != nil {
		return err
	}
	if err := s.writeIndex(s.count + 1); err != nil {
		return err
	}
	s.count++
	return nil
}

// ReadLast returns the most recently appended record, or ErrEmpty.
func (s *Store) ReadLast() (Record, error) {
	if s.count == 0 {
		return Record{}, ErrEmpty
	}
	off := int64(HeaderSize) + int64(s.count-1)*RecordSize
	if _, err := s.region.ReadAt(s.buf[:], off); err != nil {
		return Record{}, err
	}
	return decodeRecord(s.buf[:]), nil
}

// Clear resets the write index to 0 without erasing record bytes; old slots
// are reused by future appends.
func (s *Store) Clear() error {
	if err := s.writeIndex(0); err != nil {
		return err
	}
	s.count = 0
	return nil
}

func (s *Store) readIndex() (uint16, error) {
	var b [HeaderSize]byte
	if _, err := s.region.ReadAt(b[:], 0); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (s *Store) writeIndex(n uint16) error {
	var b [HeaderSize]byte
	binary.LittleEndian.PutUint16(b[:], n)
	_, err := s.region.WriteAt(b[:], 0)
	return err
}
