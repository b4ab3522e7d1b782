package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// Triple is the hour/minute/second display form of a duration. Fields are
// kept as strings so they can back text inputs directly; anything that
// doesn't parse as a number counts as zero.
type Triple struct {
	Hour   string
	Minute string
	Second string
}

// NewTriple returns the all-zero display value.
func NewTriple() Triple {
	return Triple{Hour: "00", Minute: "00", Second: "00"}
}

// FromSeconds splits a total-seconds value into a zero-padded triple.
// Above 99 hours the hour field grows past two digits.
func FromSeconds(sec uint64) Triple {
	return Triple{
		Hour:   fmt.Sprintf("%02d", sec/3600),
		Minute: fmt.Sprintf("%02d", (sec%3600)/60),
		Second: fmt.Sprintf("%02d", sec%60),
	}
}

// Seconds combines the three fields into a total-seconds value. Empty or
// non-numeric fields are treated as zero, so this cannot fail.
func (t Triple) Seconds() uint64 {
	var res uint64
	res += fieldValue(t.Hour) * 3600
	res += fieldValue(t.Minute) * 60
	res += fieldValue(t.Second)
	return res
}

// Normalize left-pads each field with zeros to at least two characters.
// Non-numeric content is padded as-is, not rejected.
func (t Triple) Normalize() Triple {
	return Triple{
		Hour:   padField(t.Hour),
		Minute: padField(t.Minute),
		Second: padField(t.Second),
	}
}

func (t Triple) String() string {
	return t.Hour + ":" + t.Minute + ":" + t.Second
}

func fieldValue(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func padField(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
