package btdf

import (
	"time"
)

// HolidayTable maps "MM-DD" keys to holiday names for one calendar year.
type HolidayTable map[string]string

// Swedish holidays that fall on the same calendar date every year.
var fixedHolidays = HolidayTable{
	"01-01": "Nyårsdagen",
	"01-06": "Trettondedag jul",
	"05-01": "Första maj",
	"06-06": "Sveriges nationaldag",
	"12-24": "Julafton",
	"12-25": "Juldagen",
	"12-26": "Annandag jul",
	"12-31": "Nyårsafton",
}

// CalculateEaster returns Easter Sunday for the given year using the
// Meeus/Jones/Butcher Gregorian algorithm, valid for years 1583-4099.
func CalculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MidsummerEve returns the Friday in the inclusive June 19-25 window.
func MidsummerEve(year int) time.Time {
	date := time.Date(year, time.June, 19, 0, 0, 0, 0, time.UTC)
	for date.Weekday() != time.Friday {
		date = date.AddDate(0, 0, 1)
	}

	return date
}

// HolidayTableForYear merges the fixed holidays with the moving feasts
// computed for the given year. Moving feasts must always come from the
// year being asked about, never a previously computed one.
func HolidayTableForYear(year int) HolidayTable {
	easter := CalculateEaster(year)
	midsummerEve := MidsummerEve(year)

	table := make(HolidayTable, len(fixedHolidays)+7)
	for key, name := range fixedHolidays {
		table[key] = name
	}

	table[easter.AddDate(0, 0, -2).Format(MonthDayFormat)] = "Långfredagen"
	table[easter.Format(MonthDayFormat)] = "Påskdagen"
	table[easter.AddDate(0, 0, 1).Format(MonthDayFormat)] = "Annandag påsk"
	table[easter.AddDate(0, 0, 39).Format(MonthDayFormat)] = "Kristi himmelsfärdsdag"
	table[easter.AddDate(0, 0, 49).Format(MonthDayFormat)] = "Pingstdagen"
	table[midsummerEve.Format(MonthDayFormat)] = "Midsommarafton"
	table[midsummerEve.AddDate(0, 0, 1).Format(MonthDayFormat)] = "Midsommardagen"

	return table
}

// HolidayName returns the name of the holiday the date falls on, if any.
func HolidayName(date time.Time) (string, bool) {
	name, found := HolidayTableForYear(date.Year())[date.Format(MonthDayFormat)]
	return name, found
}

// IsHoliday reports whether the date falls on a Swedish public holiday.
func IsHoliday(date time.Time) bool {
	_, found := HolidayName(date)
	return found
}
