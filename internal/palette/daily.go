package palette

import "time"

const (
	redPrime   = 62287637
	greenPrime = 74306387
	bluePrime  = 19392253
)

// DailyRange holds the per-channel bounds used by the Of the Day palette. It
// only depends on the calendar date it was built from.
type DailyRange struct {
	Red, Green, Blue [2]int
}

// NewDailyRange derives the channel bounds for the calendar date of t, in t's
// location.
func NewDailyRange(t time.Time) DailyRange {
	y, m, d := t.Date()
	n1 := int64(y)*10000 + int64(m)*100 + int64(d)
	n2 := int64(d)*1000000 + int64(y)*100 + int64(m)
	bounds := func(prime int64) [2]int {
		return [2]int{int(prime * n1 % 256), int(prime * n2 % 256)}
	}
	return DailyRange{
		Red:   bounds(redPrime),
		Green: bounds(greenPrime),
		Blue:  bounds(bluePrime),
	}
}
