package status

import (
	"encoding/json"
	"fmt"
	"time"
)

// StateOK is the only state the service reports.
const StateOK = "ok"

const (
	secondsLayout = "2006-01-02T15:04:05"
	parseLayout   = "2006-01-02T15:04:05.999999"
)

// Clock supplies the request arrival time.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Response is the payload served by the status endpoint.
type Response struct {
	Status    string    `json:"status"`
	Timestamp Timestamp `json:"timestamp"`
}

// New builds a Response stamped with t.
func New(t time.Time) Response {
	return Response{
		Status:    StateOK,
		Timestamp: Timestamp(t),
	}
}

// Timestamp encodes as naive ISO-8601 in UTC: no zone suffix, microsecond
// fraction only when non-zero.
type Timestamp time.Time

// Time returns the timestamp as UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts).UTC()
}

func (ts Timestamp) String() string {
	t := ts.Time()
	micros := t.Nanosecond() / int(time.Microsecond)
	if micros == 0 {
		return t.Format(secondsLayout)
	}
	return fmt.Sprintf("%s.%06d", t.Format(secondsLayout), micros)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// ParseTimestamp parses the naive form, with or without the fraction, as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(parseLayout, s, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp(t), nil
}
