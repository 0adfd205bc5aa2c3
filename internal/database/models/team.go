package models

import "strings"

// DefaultArchiveTeamName is the reserved name of the synthetic archive bucket.
// No persisted team may carry it.
const DefaultArchiveTeamName = "ARCHIV"

// Team groups team members under at most one leading user
type Team struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	LeaderID *uint  `json:"leader_id,omitempty" gorm:"uniqueIndex"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsReservedTeamName reports whether name collides with the archive bucket name
func IsReservedTeamName(name, archiveName string) bool {
	return strings.EqualFold(strings.TrimSpace(name), archiveName)
}
