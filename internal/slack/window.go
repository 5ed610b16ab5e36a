package slack

import (
	"strconv"
	"time"
)

// TimeWindow bounds a history export. Oldest is the first day of the
// current month some years back; Latest is midnight at the start of today.
type TimeWindow struct {
	Oldest time.Time
	Latest time.Time
}

// NewTimeWindow derives the export window from the wall clock reading now,
// in now's location.
func NewTimeWindow(now time.Time, yearsAgo int) TimeWindow {
	loc := now.Location()
	return TimeWindow{
		Oldest: time.Date(now.Year()-yearsAgo, now.Month(), 1, 0, 0, 0, 0, loc),
		Latest: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc),
	}
}

// OldestUnix returns Oldest as Unix seconds
func (w TimeWindow) OldestUnix() int64 {
	return w.Oldest.Unix()
}

// LatestUnix returns Latest as Unix seconds
func (w TimeWindow) LatestUnix() int64 {
	return w.Latest.Unix()
}

// Empty reports whether the window cannot contain any messages
func (w TimeWindow) Empty() bool {
	return !w.Oldest.Before(w.Latest)
}

func (w TimeWindow) oldestParam() string {
	return strconv.FormatInt(w.OldestUnix(), 10)
}

func (w TimeWindow) latestParam() string {
	return strconv.FormatInt(w.LatestUnix(), 10)
}
