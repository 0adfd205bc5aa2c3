package service

import (
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/repository"
)

// Viewer is the authenticated user on whose behalf a service call runs
type Viewer struct {
	ID        uint
	Username  string
	Role      models.Role
	LedTeamID *uint
}

// NewViewer builds a viewer from the stored user, so the led team is current
func NewViewer(user *models.User) *Viewer {
	return &Viewer{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		LedTeamID: user.LedTeamID,
	}
}

// Scope returns nil for roles that see every coaching
func (v *Viewer) Scope() *repository.VisibilityScope {
	if v.Role.HasFullVisibility() {
		return nil
	}
	return &repository.VisibilityScope{TeamID: v.LedTeamID, CoachID: v.ID}
}

// LeadsTeam reports whether teamID is the viewer's own team
func (v *Viewer) LeadsTeam(teamID *uint) bool {
	return v.LedTeamID != nil && teamID != nil && *v.LedTeamID == *teamID
}

// IsAdmin reports whether the viewer holds the admin role
func (v *Viewer) IsAdmin() bool {
	return v.Role == models.RoleAdmin
}

func (v *Viewer) canSeeMember(member *models.TeamMember) bool {
	return v.Role.HasFullVisibility() || v.LeadsTeam(member.TeamID)
}

func (v *Viewer) canSeeCoaching(c *models.Coaching) bool {
	if v.Role.HasFullVisibility() {
		return true
	}
	if c.CoachID != nil && *c.CoachID == v.ID {
		return true
	}
	return c.TeamMember != nil && v.LeadsTeam(c.TeamMember.TeamID)
}

func requireManage(v *Viewer) error {
	if v == nil || !v.Role.CanManage() {
		return apperrors.ErrForbidden
	}
	return nil
}
