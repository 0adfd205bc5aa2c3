package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"coaching-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain-text password of every factory user
const DefaultPassword = "secret123"

var (
	sequence            atomic.Uint64
	defaultPasswordHash = mustHash(DefaultPassword)
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func nextSeq() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username and the quality coach role
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Username:     fmt.Sprintf("user%d", nextSeq()),
		PasswordHash: defaultPasswordHash,
		Role:         models.RoleQualityCoach,
	}
}

// WithRole creates a test User holding role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// TeamLead creates a test User with the team lead role
func (f *UserFactory) TeamLead() *models.User {
	return f.WithRole(models.RoleTeamLead)
}

// Admin creates a test User with the admin role
func (f *UserFactory) Admin() *models.User {
	return f.WithRole(models.RoleAdmin)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name and no leader
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name: fmt.Sprintf("Team %d", nextSeq()),
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates an archived test TeamMember
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		Name: fmt.Sprintf("Member %d", nextSeq()),
	}
}

// InTeam creates a test TeamMember attached to teamID
func (f *TeamMemberFactory) InTeam(teamID uint) *models.TeamMember {
	member := f.Create()
	member.TeamID = &teamID
	return member
}

// CoachingFactory provides methods to create test Coaching data
type CoachingFactory struct{}

// NewCoachingFactory creates a new CoachingFactory
func NewCoachingFactory() *CoachingFactory {
	return &CoachingFactory{}
}

// Create creates a Side-by-Side Sales coaching with mark 7 and 30 minutes
func (f *CoachingFactory) Create() *models.Coaching {
	c := &models.Coaching{
		CoachingDate:    time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC),
		CoachingStyle:   models.CoachingStyleSideBySide,
		Subject:         models.CoachingSubjectSales,
		CoachNotes:      "Gesprächsführung geübt",
		PerformanceMark: 7,
		TimeSpent:       30,
	}
	c.Checklist.Normalize()
	return c
}

// For creates a coaching for memberID recorded by coachID
func (f *CoachingFactory) For(memberID uint, coachID *uint) *models.Coaching {
	c := f.Create()
	c.TeamMemberID = memberID
	c.CoachID = coachID
	return c
}

// WithMark creates a coaching for memberID with the given mark and time spent
func (f *CoachingFactory) WithMark(memberID uint, mark, minutes int) *models.Coaching {
	c := f.For(memberID, nil)
	c.PerformanceMark = mark
	c.TimeSpent = minutes
	return c
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	TeamMember *TeamMemberFactory
	Coaching   *CoachingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		TeamMember: NewTeamMemberFactory(),
		Coaching:   NewCoachingFactory(),
	}
}
