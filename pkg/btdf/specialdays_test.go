package btdf_test

import (
	"testing"
	"time"

	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculateEaster(t *testing.T) {
	known := map[int]time.Time{
		1997: date(1997, time.March, 30),
		2000: date(2000, time.April, 23),
		2008: date(2008, time.March, 23),
		2011: date(2011, time.April, 24),
		2016: date(2016, time.March, 27),
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2038: date(2038, time.April, 25),
	}

	for year, expected := range known {
		assert.Equal(t, expected, btdf.CalculateEaster(year), "easter for %d", year)
	}
}

func TestMidsummerEve(t *testing.T) {
	known := map[int]time.Time{
		2016: date(2016, time.June, 24),
		2024: date(2024, time.June, 21),
		2025: date(2025, time.June, 20),
		2026: date(2026, time.June, 19),
		2027: date(2027, time.June, 25),
	}

	for year, expected := range known {
		eve := btdf.MidsummerEve(year)
		assert.Equal(t, expected, eve, "midsummer eve for %d", year)
		assert.Equal(t, time.Friday, eve.Weekday())
	}
}

func TestHolidayTableForYear(t *testing.T) {
	table := btdf.HolidayTableForYear(2024)

	// 8 fixed entries plus 7 moving feasts
	require.Len(t, table, 15)

	fixed := []string{"01-01", "01-06", "05-01", "06-06", "12-24", "12-25", "12-26", "12-31"}
	for _, key := range fixed {
		assert.Contains(t, table, key)
	}

	assert.Equal(t, "Långfredagen", table["03-29"])
	assert.Equal(t, "Påskdagen", table["03-31"])
	assert.Equal(t, "Annandag påsk", table["04-01"])
	assert.Equal(t, "Kristi himmelsfärdsdag", table["05-09"])
	assert.Equal(t, "Pingstdagen", table["05-19"])
	assert.Equal(t, "Midsommarafton", table["06-21"])
	assert.Equal(t, "Midsommardagen", table["06-22"])
}

func TestIsHolidayFixedDates(t *testing.T) {
	for _, year := range []int{1999, 2016, 2024, 2031} {
		assert.True(t, btdf.IsHoliday(date(year, time.January, 1)))
		assert.True(t, btdf.IsHoliday(date(year, time.January, 6)))
		assert.True(t, btdf.IsHoliday(date(year, time.May, 1)))
		assert.True(t, btdf.IsHoliday(date(year, time.June, 6)))
		assert.True(t, btdf.IsHoliday(date(year, time.December, 24)))
		assert.True(t, btdf.IsHoliday(date(year, time.December, 25)))
		assert.True(t, btdf.IsHoliday(date(year, time.December, 26)))
		assert.True(t, btdf.IsHoliday(date(year, time.December, 31)))
	}
}

func TestIsHolidayMovingDates(t *testing.T) {
	holidays := []time.Time{
		date(2016, time.March, 25), // Långfredagen
		date(2016, time.June, 24),  // Midsommarafton
		date(2024, time.March, 29), // Långfredagen
		date(2024, time.May, 9),    // Kristi himmelsfärdsdag
		date(2024, time.May, 19),   // Pingstdagen
		date(2025, time.April, 21), // Annandag påsk
		date(2025, time.May, 29),   // Kristi himmelsfärdsdag
		date(2025, time.June, 20),  // Midsommarafton
		date(2025, time.June, 21),  // Midsommardagen
	}

	for _, holiday := range holidays {
		assert.True(t, btdf.IsHoliday(holiday), "%s should be a holiday", holiday.Format(btdf.YearMonthDayFormat))
	}

	ordinaryDays := []time.Time{
		date(2024, time.April, 2),
		date(2024, time.June, 20),  // midsummer eve in other years, not 2024
		date(2025, time.March, 29), // easter moved since 2024
		date(2025, time.November, 12),
	}

	for _, day := range ordinaryDays {
		assert.False(t, btdf.IsHoliday(day), "%s should not be a holiday", day.Format(btdf.YearMonthDayFormat))
	}
}

func TestHolidayName(t *testing.T) {
	name, found := btdf.HolidayName(date(2024, time.June, 21))
	require.True(t, found)
	assert.Equal(t, "Midsommarafton", name)

	_, found = btdf.HolidayName(date(2024, time.June, 17))
	assert.False(t, found)
}
