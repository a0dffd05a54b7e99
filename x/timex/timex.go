package timex

import "time"

// NowMs returns Unix milliseconds as int64. Used for bus payload timestamps
// to keep payloads flat and allocation-free.
func NowMs() int64 { return time.Now().UnixMilli() }
