package models

// User is an account that records, reviews or manages coachings
type User struct {
	BaseModel
	Username     string  `json:"username" gorm:"uniqueIndex;not null;size:64" validate:"required,min=3,max=64"`
	Email        *string `json:"email,omitempty" gorm:"index;size:120" validate:"omitempty,email,max=120"`
	PasswordHash string  `json:"-" gorm:"size:256;not null"`
	Role         Role    `json:"role" gorm:"type:varchar(32);not null;index" validate:"required"`

	// LedTeamID mirrors Team.LeaderID; both sides always point at each other or are both empty.
	LedTeamID *uint `json:"led_team_id,omitempty" gorm:"uniqueIndex"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsTeamLead reports whether the user currently holds the team lead role
func (u *User) IsTeamLead() bool {
	return u.Role == RoleTeamLead
}
