package taskname

const (
	// Platform tasks
	PlatformSync = "platform:sync"

	// Automation tasks
	AutomationRun = "automation:run"
)
