package logstore

import (
	"testing"

	"luxlogger-go/types"
)

func TestRecord_ByteLayout(t *testing.T) {
	var r Record
	r.Time = types.DateTime{Year: 2025, Month: 8, Day: 23, Hour: 14, Minute: 7, Second: 59}
	r.Lux = 1.0 // float32 bits 0x3F800000
	r.SetLabel("LAB")

	var buf [RecordSize]byte
	r.encode(buf[:])

	// year 2025 = 0x07E9, little-endian
	want := []byte{0xE9, 0x07, 8, 23, 14, 7, 59, 0x00, 0x00, 0x80, 0x3F, 'L', 'A', 'B'}
	for i, w := range want {
		if buf[i] != w {
			t.Fatalf("byte %d = %#02x, want %#02x", i, buf[i], w)
		}
	}
	for i := 14; i < RecordSize; i++ {
		if buf[i] != ' ' {
			t.Fatalf("label padding byte %d = %#02x, want space", i, buf[i])
		}
	}

	back := decodeRecord(buf[:])
	if back != r {
		t.Fatalf("decode mismatch:\n got %+v\nwant %+v", back, r)
	}
}

func TestRecord_SetLabelTruncatesAndPads(t *testing.T) {
	var r Record
	r.SetLabel("ABCDEFGHIJKLMNOPQRSTUVWXYZ") // 26 chars
	if got := r.LabelString(); got != "ABCDEFGHIJKLMNOPQRST" {
		t.Fatalf("truncated label = %q", got)
	}

	r.SetLabel("AC")
	if got := string(r.Label[:]); got != "AC                  " {
		t.Fatalf("padded label = %q", got)
	}
	if got := r.LabelString(); got != "AC" {
		t.Fatalf("trimmed label = %q", got)
	}
}

func TestRecordSize_IsPackedConstant(t *testing.T) {
	if RecordSize != 31 {
		t.Fatalf("RecordSize = %d, want 31 (2+1+1+1+1+1+4+%d)", RecordSize, LabelLen)
	}
}
