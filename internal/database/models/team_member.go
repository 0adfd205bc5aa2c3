package models

// TeamMember is a coached person. A nil TeamID means the member is archived.
type TeamMember struct {
	BaseModel
	Name   string `json:"name" gorm:"not null;size:100" validate:"required,min=2,max=100"`
	TeamID *uint  `json:"team_id,omitempty" gorm:"index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// IsArchived is the single archival predicate used by every query path
func (m *TeamMember) IsArchived() bool {
	return m.TeamID == nil
}

// TeamName returns the member's team name or the archive label
func (m *TeamMember) TeamName(archiveName string) string {
	if m.IsArchived() || m.Team == nil {
		return archiveName
	}
	return m.Team.Name
}
