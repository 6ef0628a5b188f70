package rankings

const (
	DefaultHistoryMonths = 6
	MaxHistoryMonths     = 36
	DefaultConcurrency   = 4

	notAvailable = "N/A"
)
