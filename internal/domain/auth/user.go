package auth

import "appraisal/internal/domain/goals"

// UserContext is the authenticated caller attached to a request.
type UserContext struct {
	UserID   string
	RoleName string
	Name     string
}

func (u UserContext) IsManager() bool {
	return u.RoleName == goals.RoleManager
}

func (u UserContext) Member() goals.Member {
	return goals.Member{ID: u.UserID, Name: u.Name, Role: u.RoleName}
}
