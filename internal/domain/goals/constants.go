package goals

const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusOnHold    = "On Hold"
	StatusCancelled = "Cancelled"

	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
)

const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

const WeeksPerMonth = 4
