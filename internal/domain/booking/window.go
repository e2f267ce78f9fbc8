package booking

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar day without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return DateOf(t), nil
}

// Time is midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }
func (d Date) IsZero() bool       { return d == Date{} }

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// RollingWindow returns the bookable dates for the instant now, seen from loc.
// At or after cutoffHour the window starts tomorrow.
func RollingWindow(now time.Time, loc *time.Location, cutoffHour, days int) []Date {
	if loc != nil {
		now = now.In(loc)
	}
	start := DateOf(now)
	if now.Hour() >= cutoffHour {
		start = start.AddDays(1)
	}

	dates := make([]Date, 0, days)
	for i := range days {
		dates = append(dates, start.AddDays(i))
	}
	return dates
}
