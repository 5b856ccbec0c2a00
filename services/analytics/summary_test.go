package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"earnhub/services/earning"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func rec(platform, date string, amount float64) *earning.Record {
	return &earning.Record{
		UserID:     "u1",
		Platform:   platform,
		Task:       "Task",
		Amount:     amount,
		Date:       date,
		SourceType: "survey",
	}
}

func TestSummarize_BasicAggregation(t *testing.T) {
	records := []*earning.Record{
		rec("Survey Junkie", "2026-03-14", 15.50),
		rec("Swagbucks", "2026-03-15", 8.25),
	}

	s := Summarize(records, 7, testNow)

	require.InDelta(t, 23.75, s.TotalEarnings, 1e-9)
	require.Equal(t, 2, s.TaskCount)
	require.InDelta(t, 23.75/7, s.AvgPerDay, 1e-9)
	require.InDelta(t, 23.75/2, s.AvgPerTask, 1e-9)
	require.Equal(t, "Survey Junkie", s.TopPlatform)
	require.InDelta(t, 15.50, s.PlatformBreakdown["Survey Junkie"], 1e-9)
	require.InDelta(t, 8.25, s.PlatformBreakdown["Swagbucks"], 1e-9)
}

func TestSummarize_DailySeriesShape(t *testing.T) {
	records := []*earning.Record{
		rec("Upwork", "2026-03-12", 40),
	}

	s := Summarize(records, 7, testNow)

	require.Len(t, s.DailyEarnings, 7)
	require.Equal(t, "2026-03-09", s.DailyEarnings[0].Date)
	require.Equal(t, "2026-03-15", s.DailyEarnings[6].Date)

	var sum float64
	var nonZero int
	for _, d := range s.DailyEarnings {
		sum += d.Earnings
		if d.Earnings != 0 {
			nonZero++
		}
	}
	require.InDelta(t, s.TotalEarnings, sum, 1e-9)
	require.Equal(t, 1, nonZero)
}

func TestSummarize_TotalMatchesDailySum(t *testing.T) {
	records := []*earning.Record{
		rec("A", "2026-03-15", 12.31),
		rec("B", "2026-03-15", 0.07),
		rec("A", "2026-03-10", 99.99),
		rec("C", "2026-03-01", 3.50),
		rec("B", "2026-02-20", 41.20),
	}

	for _, days := range []int{7, 30, 90} {
		s := Summarize(records, days, testNow)

		var sum float64
		for _, d := range s.DailyEarnings {
			sum += d.Earnings
		}
		require.InDelta(t, s.TotalEarnings, sum, 1e-9)
		require.Len(t, s.DailyEarnings, days)
	}
}

func TestSummarize_WindowBoundaries(t *testing.T) {
	records := []*earning.Record{
		rec("In", "2026-03-09", 10),     // first day of the 7d window
		rec("Out", "2026-03-08", 10),    // one day too old
		rec("Future", "2026-03-16", 10), // tomorrow
	}

	s := Summarize(records, 7, testNow)

	require.InDelta(t, 10, s.TotalEarnings, 1e-9)
	require.Equal(t, 1, s.TaskCount)
	require.Equal(t, "In", s.TopPlatform)
	require.NotContains(t, s.PlatformBreakdown, "Out")
	require.NotContains(t, s.PlatformBreakdown, "Future")
}

func TestSummarize_StaleRecordExcludedFromShortWindow(t *testing.T) {
	records := []*earning.Record{
		rec("Survey Junkie", testNow.Format("2006-01-02"), 15.50),
		rec("Swagbucks", testNow.AddDate(0, 0, -8).Format("2006-01-02"), 8.25),
	}

	s := Summarize(records, 7, testNow)

	require.InDelta(t, 15.50, s.TotalEarnings, 1e-9)
	require.Equal(t, 1, s.TaskCount)
	require.InDelta(t, 15.50/7, s.AvgPerDay, 1e-9)
	require.Equal(t, "Survey Junkie", s.TopPlatform)
}

func TestSummarize_MalformedDatesSkipped(t *testing.T) {
	records := []*earning.Record{
		rec("Good", "2026-03-14", 5),
		rec("Bad", "03/14/2026", 100),
		rec("Bad", "", 100),
	}

	s := Summarize(records, 7, testNow)

	require.InDelta(t, 5, s.TotalEarnings, 1e-9)
	require.Equal(t, 1, s.TaskCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 30, testNow)

	require.Zero(t, s.TotalEarnings)
	require.Zero(t, s.AvgPerDay)
	require.Zero(t, s.AvgPerTask)
	require.Zero(t, s.TaskCount)
	require.Empty(t, s.TopPlatform)
	require.Empty(t, s.PlatformBreakdown)
	require.Len(t, s.DailyEarnings, 30)
	for _, d := range s.DailyEarnings {
		require.Zero(t, d.Earnings)
	}
}

func TestSummarize_TopPlatformAccumulates(t *testing.T) {
	records := []*earning.Record{
		rec("Swagbucks", "2026-03-14", 10),
		rec("Upwork", "2026-03-14", 12),
		rec("Swagbucks", "2026-03-15", 5),
	}

	s := Summarize(records, 7, testNow)

	require.Equal(t, "Swagbucks", s.TopPlatform)
	require.InDelta(t, 15, s.PlatformBreakdown["Swagbucks"], 1e-9)
}

func TestSummarize_TopPlatformTieBreaksToFirstSeen(t *testing.T) {
	records := []*earning.Record{
		rec("Second", "2026-03-14", 10),
		rec("First", "2026-03-13", 10),
	}

	// "Second" appears first in record order, so it wins the tie.
	s := Summarize(records, 7, testNow)
	require.Equal(t, "Second", s.TopPlatform)
}

func TestSummarize_Idempotent(t *testing.T) {
	records := []*earning.Record{
		rec("A", "2026-03-14", 7.77),
		rec("B", "2026-03-10", 2.23),
	}

	first := Summarize(records, 30, testNow)
	second := Summarize(records, 30, testNow)

	require.Equal(t, first, second)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("")
	require.NoError(t, err)
	require.Equal(t, 30, w.Days)

	w, err = ParseWindow("7d")
	require.NoError(t, err)
	require.Equal(t, 7, w.Days)

	w, err = ParseWindow("90d")
	require.NoError(t, err)
	require.Equal(t, "90d", w.Token)

	_, err = ParseWindow("365d")
	require.Error(t, err)
}
