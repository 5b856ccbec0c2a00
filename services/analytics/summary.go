package analytics

import (
	"time"

	"earnhub/services/earning"
)

// DailyEarning is one day of the zero-filled daily series.
type DailyEarning struct {
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
}

// Summary is the derived analytics view over one time window. It is
// recomputed on every aggregation call; it is never stored independently of
// its inputs beyond the cache TTL.
type Summary struct {
	TotalEarnings     float64            `json:"total_earnings"`
	AvgPerDay         float64            `json:"avg_per_day"`
	AvgPerTask        float64            `json:"avg_per_task"`
	TaskCount         int                `json:"task_count"`
	PlatformBreakdown map[string]float64 `json:"platform_breakdown"`
	DailyEarnings     []DailyEarning     `json:"daily_earnings"`
	TopPlatform       string             `json:"top_platform,omitempty"`
}

// Summarize aggregates records over the trailing windowDays full calendar
// days ending on now's UTC date. It is a pure function: records are read in
// input order and never mutated.
//
// Records dated before the window, in the future, or with a malformed date
// are excluded. The daily series always holds exactly windowDays entries,
// zero-filled for days without records, so consumers never special-case
// missing days. TopPlatform ties break to the platform first encountered in
// record order; it is empty when the window holds no records.
func Summarize(records []*earning.Record, windowDays int, now time.Time) *Summary {
	today := now.UTC()
	start := today.AddDate(0, 0, -(windowDays - 1))

	startDate := start.Format(earning.DateLayout)
	endDate := today.Format(earning.DateLayout)

	var (
		total         float64
		count         int
		breakdown     = make(map[string]float64)
		platformOrder []string
		daily         = make(map[string]float64, windowDays)
	)

	for _, r := range records {
		if _, err := time.Parse(earning.DateLayout, r.Date); err != nil {
			continue
		}
		// DateLayout compares lexicographically in date order.
		if r.Date < startDate || r.Date > endDate {
			continue
		}

		total += r.Amount
		count++
		daily[r.Date] += r.Amount

		if _, seen := breakdown[r.Platform]; !seen {
			platformOrder = append(platformOrder, r.Platform)
		}
		breakdown[r.Platform] += r.Amount
	}

	series := make([]DailyEarning, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := start.AddDate(0, 0, i).Format(earning.DateLayout)
		series = append(series, DailyEarning{Date: date, Earnings: daily[date]})
	}

	avgPerTask := 0.0
	if count > 0 {
		avgPerTask = total / float64(count)
	}

	var top string
	var topAmount float64
	for _, p := range platformOrder {
		if top == "" || breakdown[p] > topAmount {
			top = p
			topAmount = breakdown[p]
		}
	}

	return &Summary{
		TotalEarnings:     total,
		AvgPerDay:         total / float64(windowDays),
		AvgPerTask:        avgPerTask,
		TaskCount:         count,
		PlatformBreakdown: breakdown,
		DailyEarnings:     series,
		TopPlatform:       top,
	}
}
