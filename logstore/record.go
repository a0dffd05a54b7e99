package logstore

import (
	"encoding/binary"
	"math"

	"luxlogger-go/types"
)

// On-region layout, byte-exact and explicitly packed so RecordSize does not
// depend on any compiler's padding rules:
//
//	[0,1]   year, little-endian u16
//	[2]     month   [3] day   [4] hour   [5] minute   [6] second
//	[7,10]  lux, IEEE-754 float32 bits, little-endian
//	[11,30] label, space-padded
const (
	LabelLen   = 20
	RecordSize = 11 + LabelLen
	HeaderSize = 2 // write index, little-endian u16, at region offset 0
)

// Record is one logged observation.
type Record struct {
	Time  types.DateTime
	Lux   float32
	Label [LabelLen]byte
}

// SetLabel copies s into the fixed-width label, space-padding the tail.
// Longer input is truncated to LabelLen.
func (r *Record) SetLabel(s string) {
	n := copy(r.Label[:], s)
	for i := n; i < LabelLen; i++ {
		r.Label[i] = ' '
	}
}

// LabelString returns the label without trailing spaces.
func (r *Record) LabelString() string {
	end := LabelLen
	for end > 0 && r.Label[end-1] == ' ' {
		end--
	}
	return string(r.Label[:end])
}

func (r *Record) encode(dst []byte) {
	_ = dst[RecordSize-1]
	binary.LittleEndian.PutUint16(dst[0:2], r.Time.Year)
	dst[2] = r.Time.Month
	dst[3] = r.Time.Day
	dst[4] = r.Time.Hour
	dst[5] = r.Time.Minute
	dst[6] = r.Time.Second
	binary.LittleEndian.PutUint32(dst[7:11], math.Float32bits(r.Lux))
	copy(dst[11:11+LabelLen], r.Label[:])
}

func decodeRecord(src []byte) Record {
	_ = src[RecordSize-1]
	var r Record
	r.Time.Year = binary.LittleEndian.Uint16(src[0:2])
	r.Time.Month = src[2]
	r.Time.Day = src[3]
	r.Time.Hour = src[4]
	r.Time.Minute = src[5]
	r.Time.Second = src[6]
	r.Lux = math.Float32frombits(binary.LittleEndian.Uint32(src[7:11]))
	copy(r.Label[:], src[11:11+LabelLen])
	return r
}
