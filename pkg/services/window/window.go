package window

import (
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	dateLayout = "20060102"

	// monthEndDay closes every month window regardless of the month's real
	// length. Dashboard totals already published depend on it.
	monthEndDay = "31"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthWindow is one slot of the yearly breakdown.
type MonthWindow struct {
	Month  time.Month
	Label  string
	Window domain.DateWindow
}

// Calculator derives YYYYMMDD boundaries relative to the clock's current
// moment, observed in loc.
type Calculator struct {
	clock Clock
	loc   *time.Location
}

func NewCalculator(clock Clock, loc *time.Location) *Calculator {
	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{clock: clock, loc: loc}
}

func (c *Calculator) now() time.Time {
	return c.clock.Now().In(c.loc)
}

func (c *Calculator) Today() string {
	return c.now().Format(dateLayout)
}

// CurrentWeek returns Monday..Sunday of the ISO week containing today.
func (c *Calculator) CurrentWeek() domain.DateWindow {
	now := c.now()
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return domain.DateWindow{
		Start: monday.Format(dateLayout),
		End:   sunday.Format(dateLayout),
	}
}

func (c *Calculator) CurrentMonth() domain.DateWindow {
	now := c.now()
	return monthWindow(now.Year(), now.Month())
}

// CurrentYear returns the four-digit year used as a doc_date prefix.
func (c *Calculator) CurrentYear() string {
	return fmt.Sprintf("%04d", c.now().Year())
}

// Last7Days returns today and the six preceding calendar days, oldest first.
func (c *Calculator) Last7Days() []string {
	now := c.now()
	days := make([]string, 7)
	for i := range days {
		days[i] = now.AddDate(0, 0, i-6).Format(dateLayout)
	}
	return days
}

// YearMonths returns Jan..Dec of the current year.
func (c *Calculator) YearMonths() []MonthWindow {
	year := c.now().Year()
	months := make([]MonthWindow, 0, len(monthLabels))
	for i, label := range monthLabels {
		m := time.Month(i + 1)
		months = append(months, MonthWindow{
			Month:  m,
			Label:  label,
			Window: monthWindow(year, m),
		})
	}
	return months
}

// Custom passes caller-supplied boundaries through untouched.
func (c *Calculator) Custom(start, end string) domain.DateWindow {
	return domain.DateWindow{Start: start, End: end}
}

func monthWindow(year int, month time.Month) domain.DateWindow {
	prefix := fmt.Sprintf("%04d%02d", year, int(month))
	return domain.DateWindow{
		Start: prefix + "01",
		End:   prefix + monthEndDay,
	}
}
