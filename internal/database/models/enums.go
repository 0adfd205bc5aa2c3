package models

import "strings"

// Role is the closed set of roles a user can hold
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleTeamLead       Role = "team_lead"
	RoleQualityCoach   Role = "quality_coach"
	RoleSalesCoach     Role = "sales_coach"
	RoleTrainer        Role = "trainer"
	RoleProjectLead    Role = "project_lead"
	RoleDepartmentLead Role = "department_lead"
)

// AllRoles lists every valid role in display order
var AllRoles = []Role{
	RoleAdmin,
	RoleTeamLead,
	RoleQualityCoach,
	RoleSalesCoach,
	RoleTrainer,
	RoleProjectLead,
	RoleDepartmentLead,
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeamLead, RoleQualityCoach, RoleSalesCoach,
		RoleTrainer, RoleProjectLead, RoleDepartmentLead:
		return true
	}
	return false
}

// ParseRole converts a case-insensitive string into a Role
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// HasFullVisibility reports whether the role sees coachings of all teams.
// A team lead is scoped to their own team plus coachings they authored.
func (r Role) HasFullVisibility() bool {
	switch r {
	case RoleTeamLead:
		return false
	case RoleAdmin, RoleQualityCoach, RoleSalesCoach, RoleTrainer,
		RoleProjectLead, RoleDepartmentLead:
		return true
	}
	return false
}

// CanRecordCoachings reports whether the role may author coaching sessions
func (r Role) CanRecordCoachings() bool {
	switch r {
	case RoleAdmin, RoleTeamLead, RoleQualityCoach, RoleSalesCoach, RoleTrainer:
		return true
	case RoleProjectLead, RoleDepartmentLead:
		return false
	}
	return false
}

// CanReview reports whether the role may add reviewer notes
func (r Role) CanReview() bool {
	switch r {
	case RoleAdmin, RoleProjectLead, RoleQualityCoach, RoleDepartmentLead:
		return true
	case RoleTeamLead, RoleSalesCoach, RoleTrainer:
		return false
	}
	return false
}

// CanManage reports whether the role may manage users, teams and members
func (r Role) CanManage() bool {
	return r == RoleAdmin
}

// CoachingStyle defines how a coaching session was conducted
type CoachingStyle string

const (
	CoachingStyleSideBySide CoachingStyle = "Side-by-Side"
	CoachingStyleTCAP       CoachingStyle = "TCAP"
)

// IsValid checks if the CoachingStyle is valid
func (s CoachingStyle) IsValid() bool {
	switch s {
	case CoachingStyleSideBySide, CoachingStyleTCAP:
		return true
	}
	return false
}

// CoachingSubject is the topic of a coaching session
type CoachingSubject string

const (
	CoachingSubjectSales   CoachingSubject = "Sales"
	CoachingSubjectQuality CoachingSubject = "Qualität"
	CoachingSubjectGeneral CoachingSubject = "Allgemein"
)

// IsValid checks if the CoachingSubject is valid
func (s CoachingSubject) IsValid() bool {
	switch s {
	case CoachingSubjectSales, CoachingSubjectQuality, CoachingSubjectGeneral:
		return true
	}
	return false
}

// ChecklistState is the tri-state value of a checklist item
type ChecklistState string

const (
	ChecklistMet           ChecklistState = "Ja"
	ChecklistNotMet        ChecklistState = "Nein"
	ChecklistNotApplicable ChecklistState = "k.A."
)

// IsValid checks if the ChecklistState is valid
func (s ChecklistState) IsValid() bool {
	switch s {
	case ChecklistMet, ChecklistNotMet, ChecklistNotApplicable:
		return true
	}
	return false
}

// OrDefault returns k.A. for an unset state
func (s ChecklistState) OrDefault() ChecklistState {
	if s == "" {
		return ChecklistNotApplicable
	}
	return s
}
