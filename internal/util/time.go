package util

import (
	"strconv"
	"time"
)

// FormatEpoch renders an epoch-seconds value as a UTC timestamp string.
// Upstream frequently sends placeholder strings instead of numbers;
// anything that does not parse is passed through unchanged.
func FormatEpoch(v string) string {
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return v
	}
	return time.Unix(secs, 0).UTC().Format("2006-01-02 15:04:05")
}
