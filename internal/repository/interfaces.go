package repository

import (
	"context"

	"coaching-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByRole(role models.Role) ([]models.User, error)
	CountByRole(role models.Role) (int64, error)
	Update(user *models.User) error
	SetLedTeam(userID uint, teamID *uint) error
	DetachTeam(teamID, keepUserID uint) (int64, error)
	Delete(id uint) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByNameInsensitive(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	SetLeader(teamID uint, userID *uint) error
	DetachLeader(userID, keepTeamID uint) (int64, error)
	CountMembers(teamID uint) (int64, error)
	Delete(id uint) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uint) (*models.TeamMember, error)
	GetAll(includeArchived bool) ([]models.TeamMember, error)
	GetByTeam(teamID uint) ([]models.TeamMember, error)
	GetArchived() ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Archive(id uint) error
	CountCoachings(id uint) (int64, error)
	Delete(id uint) error
}

// CoachingRepositoryInterface defines the interface for coaching repository operations
type CoachingRepositoryInterface interface {
	Create(coaching *models.Coaching) error
	GetByID(id uint) (*models.Coaching, error)
	Update(coaching *models.Coaching) error
	UpdateReviewerNotes(id uint, notes string) error
	Delete(id uint) error
	List(filter CoachingFilter, limit, offset int) ([]models.Coaching, int64, error)
	Find(filter CoachingFilter) ([]models.Coaching, error)
	GetByMember(memberID uint, limit int) ([]models.Coaching, error)
	ClearCoach(userID uint) (int64, error)
	TeamStats(filter CoachingFilter) ([]TeamStatsRow, error)
	Aggregate(filter CoachingFilter) (*AggregateRow, error)
	SubjectCounts(filter CoachingFilter) ([]SubjectCountRow, error)
}

// TransactorInterface runs fn inside one database transaction. Repositories
// handed to fn are bound to that transaction; any returned error rolls back.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
