package schedule

import (
	"fmt"
	"time"
)

// The factory pays and schedules on a 27th-to-26th cycle instead of calendar
// months. A period is named after its display month, the month the cycle
// ends in: the period labelled "Febrero" runs 27 Jan through 26 Feb.
const (
	PeriodStartDay = 27
	PeriodEndDay   = 26
)

// WorkPeriod is derived on demand and never stored.
type WorkPeriod struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DisplayMonth time.Time `json:"displayMonth"`
}

// ShiftEntry is the slice of a shift record the statistics need.
type ShiftEntry struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

type WorkStatistics struct {
	TotalDays    int `json:"totalDays"`
	WorkableDays int `json:"workableDays"`
	FreeDays     int `json:"freeDays"`
	WorkingDays  int `json:"workingDays"`
}

// CurrentWorkPeriod returns the period containing the reference date.
// On or after the 27th the period runs from this month's 27th to next
// month's 26th and displays as next month; on or before the 26th it runs
// from the previous month's 27th to this month's 26th and displays as the
// reference month. time.Date normalizes month overflow, so December rolls
// into January of the next year without special casing.
func CurrentWorkPeriod(ref time.Time) WorkPeriod {
	year, month, day := ref.Date()

	if day >= PeriodStartDay {
		return WorkPeriod{
			Start:        time.Date(year, month, PeriodStartDay, 0, 0, 0, 0, time.UTC),
			End:          time.Date(year, month+1, PeriodEndDay, 0, 0, 0, 0, time.UTC),
			DisplayMonth: time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	return WorkPeriod{
		Start:        time.Date(year, month-1, PeriodStartDay, 0, 0, 0, 0, time.UTC),
		End:          time.Date(year, month, PeriodEndDay, 0, 0, 0, 0, time.UTC),
		DisplayMonth: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WorkPeriodDates enumerates, inclusive and in order, every day of the
// period whose display month is (year, month): the 27th of the previous
// month through the 26th of the given month.
func WorkPeriodDates(year int, month time.Month) []time.Time {
	start := time.Date(year, month-1, PeriodStartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, PeriodEndDay, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// NavigateWorkPeriod shifts the display month by one period in either
// direction. Callers re-derive the boundaries with WorkPeriodDates.
func NavigateWorkPeriod(display time.Time, direction int) time.Time {
	if direction > 0 {
		return display.AddDate(0, 1, 0)
	}
	return display.AddDate(0, -1, 0)
}

// CalculateWorkStatistics computes per-employee attendance numbers for one
// period. WorkingDays deliberately counts weekends and terminated days as
// worked unless the day is explicitly marked 'L': the factory runs
// continuous-operation shifts, so only a marked free day is not worked.
func CalculateWorkStatistics(shifts []ShiftEntry, periodDates []time.Time) WorkStatistics {
	totalDays := len(periodDates)

	workableDays := 0
	for _, d := range periodDates {
		wd := d.Weekday()
		if wd >= time.Monday && wd <= time.Friday {
			workableDays++
		}
	}

	freeDays := 0
	for _, s := range shifts {
		if s.Type == "L" {
			freeDays++
		}
	}

	return WorkStatistics{
		TotalDays:    totalDays,
		WorkableDays: workableDays,
		FreeDays:     freeDays,
		WorkingDays:  totalDays - freeDays,
	}
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var spanishMonthAbbrevs = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// MonthYearLabel renders a date's month as the operators read it,
// e.g. "Febrero 2026".
func MonthYearLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", spanishMonths[t.Month()-1], t.Year())
}

// FormatWorkPeriod renders a period heading like
// "Febrero 2026 (27 ene - 26 feb)".
func FormatWorkPeriod(p WorkPeriod) string {
	return fmt.Sprintf("%s (%d %s - %d %s)",
		MonthYearLabel(p.DisplayMonth),
		p.Start.Day(), spanishMonthAbbrevs[p.Start.Month()-1],
		p.End.Day(), spanishMonthAbbrevs[p.End.Month()-1],
	)
}
