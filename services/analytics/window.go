package analytics

import (
	"earnhub/pkg/errutil"
)

// Window is a trailing period ending today over which records are
// aggregated. Only the three dashboard ranges exist.
type Window struct {
	Token string
	Days  int
}

var windows = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// ParseWindow resolves a range token. The empty token defaults to 30d;
// anything else unknown is rejected before reaching the aggregator.
func ParseWindow(token string) (Window, error) {
	if token == "" {
		token = "30d"
	}

	days, ok := windows[token]
	if !ok {
		return Window{}, errutil.BadRequest("unknown time range, expected 7d, 30d or 90d")
	}

	return Window{Token: token, Days: days}, nil
}
