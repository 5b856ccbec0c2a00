package automation

import (
	"time"

	"gorm.io/datatypes"
)

// fallbackAutomations is the synthetic set served when the record store is
// unreachable.
func fallbackAutomations(userID string, now time.Time) []*Automation {
	twoHoursAgo := now.Add(-2 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	halfHourAgo := now.Add(-30 * time.Minute)

	return []*Automation{
		{
			ID:          "auto1",
			UserID:      userID,
			Name:        "Daily Survey Check",
			Description: "Automatically checks for new high-paying surveys every morning",
			Platform:    "Survey Junkie",
			Status:      StatusActive,
			LastRun:     &twoHoursAgo,
			Earnings:    15.50,
			Frequency:   "Daily at 9:00 AM",
			Rules:       datatypes.JSON(`{"min_payout":5,"categories":["consumer","lifestyle"],"max_time_commitment":30}`),
		},
		{
			ID:          "auto2",
			UserID:      userID,
			Name:        "Video Reward Collector",
			Description: "Watches video ads and collects rewards during idle time",
			Platform:    "Swagbucks",
			Status:      StatusPaused,
			LastRun:     &yesterday,
			Earnings:    8.25,
			Frequency:   "Every 2 hours",
			Rules:       datatypes.JSON(`{"idle_time_required":120,"max_daily_videos":50}`),
		},
		{
			ID:          "auto3",
			UserID:      userID,
			Name:        "Task Notifier",
			Description: "Sends notifications for high-value tasks that match your skills",
			Platform:    "Multiple",
			Status:      StatusActive,
			LastRun:     &halfHourAgo,
			Earnings:    0,
			Frequency:   "Real-time",
			Rules:       datatypes.JSON(`{"min_payout":20,"skills":["data-entry","research","testing"],"notification_types":["email","push"]}`),
		},
	}
}
