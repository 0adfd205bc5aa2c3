package models

import (
	"fmt"
	"time"
)

// Checklist holds the seven guideline items discussed in a coaching session
type Checklist struct {
	Greeting     ChecklistState `json:"begruessung" gorm:"column:begruessung;type:varchar(10);default:'k.A.'"`
	Legitimation ChecklistState `json:"legitimation" gorm:"column:legitimation;type:varchar(10);default:'k.A.'"`
	PKA          ChecklistState `json:"pka" gorm:"column:pka;type:varchar(10);default:'k.A.'"`
	KEK          ChecklistState `json:"kek" gorm:"column:kek;type:varchar(10);default:'k.A.'"`
	Offer        ChecklistState `json:"angebot" gorm:"column:angebot;type:varchar(10);default:'k.A.'"`
	Summary      ChecklistState `json:"zusammenfassung" gorm:"column:zusammenfassung;type:varchar(10);default:'k.A.'"`
	KZB          ChecklistState `json:"kzb" gorm:"column:kzb;type:varchar(10);default:'k.A.'"`
}

// ChecklistItem is a labelled checklist value
type ChecklistItem struct {
	Label string         `json:"label"`
	State ChecklistState `json:"state"`
}

// ChecklistCounts tallies the checklist states
type ChecklistCounts struct {
	Met           int `json:"met"`
	NotMet        int `json:"not_met"`
	NotApplicable int `json:"not_applicable"`
}

// Applicable is the number of items that count towards fulfillment
func (c ChecklistCounts) Applicable() int {
	return c.Met + c.NotMet
}

// Items returns the checklist in its canonical order
func (c Checklist) Items() []ChecklistItem {
	return []ChecklistItem{
		{Label: "Begrüßung", State: c.Greeting.OrDefault()},
		{Label: "Legitimation", State: c.Legitimation.OrDefault()},
		{Label: "PKA", State: c.PKA.OrDefault()},
		{Label: "KEK", State: c.KEK.OrDefault()},
		{Label: "Angebot", State: c.Offer.OrDefault()},
		{Label: "Zusammenfassung", State: c.Summary.OrDefault()},
		{Label: "KZB", State: c.KZB.OrDefault()},
	}
}

// Normalize replaces unset items with k.A.
func (c *Checklist) Normalize() {
	for _, s := range []*ChecklistState{&c.Greeting, &c.Legitimation, &c.PKA, &c.KEK, &c.Offer, &c.Summary, &c.KZB} {
		*s = s.OrDefault()
	}
}

// Counts tallies met, not-met and not-applicable items
func (c Checklist) Counts() ChecklistCounts {
	var counts ChecklistCounts
	for _, item := range c.Items() {
		switch item.State {
		case ChecklistMet:
			counts.Met++
		case ChecklistNotMet:
			counts.NotMet++
		case ChecklistNotApplicable:
			counts.NotApplicable++
		}
	}
	return counts
}

// Percentage is the share of met items among applicable ones, 0 when none apply
func (c Checklist) Percentage() float64 {
	counts := c.Counts()
	if counts.Applicable() == 0 {
		return 0
	}
	return float64(counts.Met) / float64(counts.Applicable()) * 100
}

// Display renders fulfillment as "met/applicable (n k.A.)"
func (c Checklist) Display() string {
	counts := c.Counts()
	if counts.Applicable() == 0 {
		if counts.NotApplicable > 0 {
			return fmt.Sprintf("N/A (%d k.A.)", counts.NotApplicable)
		}
		return "N/A"
	}
	return fmt.Sprintf("%d/%d (%d k.A.)", counts.Met, counts.Applicable(), counts.NotApplicable)
}

// Coaching is a recorded coaching session for a team member
type Coaching struct {
	BaseModel
	TeamMemberID  uint            `json:"team_member_id" gorm:"not null;index"`
	CoachID       *uint           `json:"coach_id,omitempty" gorm:"index"`
	CoachingDate  time.Time       `json:"coaching_date" gorm:"not null;index"`
	CoachingStyle CoachingStyle   `json:"coaching_style" gorm:"type:varchar(50)"`
	TCAPID        *string         `json:"tcap_id,omitempty" gorm:"column:tcap_id;size:50"`
	Subject       CoachingSubject `json:"coaching_subject" gorm:"column:coaching_subject;type:varchar(50)"`
	CoachNotes    string          `json:"coach_notes" gorm:"type:text"`
	Checklist     Checklist       `json:"checklist" gorm:"embedded;embeddedPrefix:checklist_"`
	// PerformanceMark is an integer in [0, 10]
	PerformanceMark int `json:"performance_mark" gorm:"not null;default:0"`
	// TimeSpent is in minutes
	TimeSpent     int     `json:"time_spent" gorm:"not null;default:1"`
	ReviewerNotes *string `json:"reviewer_notes,omitempty" gorm:"type:text"`

	// Relationships
	TeamMember *TeamMember `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:RESTRICT"`
	Coach      *User       `json:"coach,omitempty" gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Coaching
func (Coaching) TableName() string {
	return "coachings"
}

// OverallScore scales the 0-10 performance mark to a 0-100 percentage
func (c *Coaching) OverallScore() float64 {
	return float64(c.PerformanceMark) * 10
}

// CoachName returns the coach's username or a placeholder once the coach was deleted
func (c *Coaching) CoachName() string {
	if c.Coach == nil {
		return "Unbekannt"
	}
	return c.Coach.Username
}
