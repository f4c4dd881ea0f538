package core

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// TimestampLayout is RFC 3339 in UTC with exactly three fractional digits, as browsers print dates.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time that is sent over the wire in TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t in UTC, truncated to the millisecond.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.UTC().Format(TimestampLayout))), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.Wrap(err, "timestamp must be a string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return errors.Wrap(err, "parsing timestamp")
	}
	ts.Time = t
	return nil
}
