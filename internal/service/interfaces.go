package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	ResolveViewer(ctx context.Context, userID uint) (*Viewer, error)
	CreateUser(ctx context.Context, viewer *Viewer, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, viewer *Viewer, id uint) (*UserResponse, error)
	ListUsers(ctx context.Context, viewer *Viewer, role string, page int) (*UserListResponse, error)
	UpdateUser(ctx context.Context, viewer *Viewer, id uint, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, viewer *Viewer, id uint) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, viewer *Viewer, req *TeamRequest) (*TeamResponse, error)
	GetTeam(ctx context.Context, viewer *Viewer, id uint) (*TeamResponse, error)
	ListTeams(ctx context.Context, viewer *Viewer) ([]TeamResponse, error)
	UpdateTeam(ctx context.Context, viewer *Viewer, id uint, req *TeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, viewer *Viewer, id uint) error
}

// TeamMemberServiceInterface defines the interface for team member service
type TeamMemberServiceInterface interface {
	CreateMember(ctx context.Context, viewer *Viewer, req *TeamMemberRequest) (*TeamMemberResponse, error)
	GetMember(ctx context.Context, viewer *Viewer, id uint) (*TeamMemberResponse, error)
	ListMembers(ctx context.Context, viewer *Viewer, teamID *uint, includeArchived bool) ([]TeamMemberResponse, error)
	ListArchived(ctx context.Context, viewer *Viewer) ([]TeamMemberResponse, error)
	UpdateMember(ctx context.Context, viewer *Viewer, id uint, req *TeamMemberRequest) (*TeamMemberResponse, error)
	ArchiveMember(ctx context.Context, viewer *Viewer, id uint) (*TeamMemberResponse, error)
	DeleteMember(ctx context.Context, viewer *Viewer, id uint) error
	AssignableMembers(ctx context.Context, viewer *Viewer, coachingID *uint) ([]AssignableMember, error)
}

// CoachingServiceInterface defines the interface for coaching service
type CoachingServiceInterface interface {
	CreateCoaching(ctx context.Context, viewer *Viewer, req *CoachingRequest) (*CoachingResponse, error)
	GetCoaching(ctx context.Context, viewer *Viewer, id uint) (*CoachingResponse, error)
	ListCoachings(ctx context.Context, viewer *Viewer, q CoachingQuery) (*CoachingListResponse, error)
	UpdateCoaching(ctx context.Context, viewer *Viewer, id uint, req *CoachingRequest) (*CoachingResponse, error)
	UpdateReviewNotes(ctx context.Context, viewer *Viewer, id uint, req *ReviewNotesRequest) (*CoachingResponse, error)
	DeleteCoaching(ctx context.Context, viewer *Viewer, id uint) error
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	TeamPerformance(ctx context.Context, viewer *Viewer, q ReportQuery) ([]TeamPerformance, error)
	MemberPerformance(ctx context.Context, viewer *Viewer, teamID uint, q ReportQuery) ([]MemberPerformance, error)
	SubjectDistribution(ctx context.Context, viewer *Viewer, q ReportQuery) ([]SubjectBucket, error)
	Leaderboard(ctx context.Context, viewer *Viewer, q ReportQuery) (*Leaderboard, error)
	Dashboard(ctx context.Context, viewer *Viewer, q ReportQuery) (*DashboardResponse, error)
	TeamView(ctx context.Context, viewer *Viewer, teamID *uint, q ReportQuery) (*TeamViewResponse, error)
	MemberTrend(ctx context.Context, viewer *Viewer, memberID uint, limit int) (*TrendResponse, error)
	Export(ctx context.Context, viewer *Viewer, q ReportQuery) ([]byte, string, error)
}
