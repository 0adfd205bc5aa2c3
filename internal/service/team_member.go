package service

import (
	"context"
	"fmt"
	"strings"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/metrics"
	"coaching-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TeamMemberService handles business logic for team members and their archival
type TeamMemberService struct {
	repos       *repository.Repositories
	validator   *validator.Validate
	archiveName string
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repos *repository.Repositories, validator *validator.Validate, cfg *config.Config) *TeamMemberService {
	return &TeamMemberService{
		repos:       repos,
		validator:   validator,
		archiveName: cfg.ArchiveTeamName,
	}
}

// TeamMemberRequest represents the request to create, rename or move a member
type TeamMemberRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	TeamID uint   `json:"team_id" validate:"required"`
}

// TeamMemberResponse represents the response for team member operations
type TeamMemberResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	TeamID    *uint  `json:"team_id,omitempty"`
	TeamName  string `json:"team_name"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"created_at"`
}

// AssignableMember is one entry of the member picker on the coaching form
type AssignableMember struct {
	ID       uint   `json:"id"`
	Label    string `json:"label"`
	Archived bool   `json:"archived"`
}

// CreateMember adds a member to a real team
func (s *TeamMemberService) CreateMember(ctx context.Context, viewer *Viewer, req *TeamMemberRequest) (*TeamMemberResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	team, err := s.repos.Teams.GetByID(req.TeamID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "load team")
	}

	member := &models.TeamMember{Name: strings.TrimSpace(req.Name), TeamID: &team.ID, Team: team}
	if err := s.repos.Members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"member_id": member.ID, "team_id": team.ID}).Info("Created team member")
	return s.toResponse(member), nil
}

// GetMember retrieves a member visible to the viewer
func (s *TeamMemberService) GetMember(ctx context.Context, viewer *Viewer, id uint) (*TeamMemberResponse, error) {
	member, err := s.repos.Members.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	if !viewer.canSeeMember(member) {
		return nil, apperrors.ErrForbidden
	}
	return s.toResponse(member), nil
}

// ListMembers lists members of one team, or of every team the viewer can see.
// Archived members are returned only when includeArchived is set and the viewer
// has full visibility.
func (s *TeamMemberService) ListMembers(ctx context.Context, viewer *Viewer, teamID *uint, includeArchived bool) ([]TeamMemberResponse, error) {
	if !viewer.Role.HasFullVisibility() {
		if viewer.LedTeamID == nil {
			return []TeamMemberResponse{}, nil
		}
		if teamID != nil && !viewer.LeadsTeam(teamID) {
			return nil, apperrors.ErrForbidden
		}
		teamID = viewer.LedTeamID
		includeArchived = false
	}

	var (
		members []models.TeamMember
		err     error
	)
	if teamID != nil {
		members, err = s.repos.Members.GetByTeam(*teamID)
	} else {
		members, err = s.repos.Members.GetAll(includeArchived)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	out := make([]TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *s.toResponse(&members[i]))
	}
	return out, nil
}

// ListArchived lists the members of the archive bucket
func (s *TeamMemberService) ListArchived(ctx context.Context, viewer *Viewer) ([]TeamMemberResponse, error) {
	if !viewer.Role.HasFullVisibility() {
		return nil, apperrors.ErrForbidden
	}
	members, err := s.repos.Members.GetArchived()
	if err != nil {
		return nil, fmt.Errorf("failed to list archived members: %w", err)
	}
	out := make([]TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *s.toResponse(&members[i]))
	}
	return out, nil
}

// UpdateMember renames a member or moves them to another team. Moving an
// archived member into a team restores them.
func (s *TeamMemberService) UpdateMember(ctx context.Context, viewer *Viewer, id uint, req *TeamMemberRequest) (*TeamMemberResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	member, err := s.repos.Members.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	team, err := s.repos.Teams.GetByID(req.TeamID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "load team")
	}

	member.Name = strings.TrimSpace(req.Name)
	member.TeamID = &team.ID
	member.Team = team
	if err := s.repos.Members.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"member_id": member.ID, "team_id": team.ID}).Info("Updated team member")
	return s.toResponse(member), nil
}

// ArchiveMember moves a member into the archive bucket. Their coachings stay untouched.
func (s *TeamMemberService) ArchiveMember(ctx context.Context, viewer *Viewer, id uint) (*TeamMemberResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	member, err := s.repos.Members.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	if member.IsArchived() {
		return s.toResponse(member), nil
	}

	if err := s.repos.Members.Archive(member.ID); err != nil {
		return nil, fmt.Errorf("failed to archive team member: %w", err)
	}
	previous := *member.TeamID
	member.TeamID = nil
	member.Team = nil
	metrics.MembersArchived.Inc()

	logger.WithContext(ctx).WithFields(map[string]interface{}{"member_id": member.ID, "previous_team_id": previous}).Info("Archived team member")
	return s.toResponse(member), nil
}

// DeleteMember hard-deletes a member without coachings
func (s *TeamMemberService) DeleteMember(ctx context.Context, viewer *Viewer, id uint) error {
	if err := requireManage(viewer); err != nil {
		return err
	}
	member, err := s.repos.Members.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	coachings, err := s.repos.Members.CountCoachings(member.ID)
	if err != nil {
		return fmt.Errorf("failed to count coachings: %w", err)
	}
	if coachings > 0 {
		return apperrors.ErrMemberHasCoachings
	}
	if err := s.repos.Members.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	logger.WithContext(ctx).WithField("member_id", member.ID).Info("Deleted team member")
	return nil
}

// AssignableMembers lists the members a viewer may pick for a coaching. Team
// leads see their own team; other roles see every active member labelled with
// its team. Archived members are excluded unless coachingID names a coaching
// whose member is archived, in which case that member is kept so the record
// stays editable.
func (s *TeamMemberService) AssignableMembers(ctx context.Context, viewer *Viewer, coachingID *uint) ([]AssignableMember, error) {
	var (
		members []models.TeamMember
		err     error
	)
	scoped := !viewer.Role.HasFullVisibility()
	switch {
	case scoped && viewer.LedTeamID == nil:
		members = nil
	case scoped:
		members, err = s.repos.Members.GetByTeam(*viewer.LedTeamID)
	default:
		members, err = s.repos.Members.GetAll(false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable members: %w", err)
	}

	out := make([]AssignableMember, 0, len(members)+1)
	seen := make(map[uint]bool, len(members))
	for i := range members {
		out = append(out, s.assignable(&members[i], scoped))
		seen[members[i].ID] = true
	}

	if coachingID != nil {
		coaching, err := s.repos.Coachings.GetByID(*coachingID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrCoachingNotFound, "load coaching")
		}
		if !viewer.canSeeCoaching(coaching) {
			return nil, apperrors.ErrForbidden
		}
		if coaching.TeamMember != nil && !seen[coaching.TeamMemberID] {
			out = append(out, s.assignable(coaching.TeamMember, false))
		}
	}
	return out, nil
}

func (s *TeamMemberService) assignable(member *models.TeamMember, bare bool) AssignableMember {
	label := member.Name
	if !bare {
		label = fmt.Sprintf("%s (%s)", member.Name, member.TeamName(s.archiveName))
	}
	return AssignableMember{ID: member.ID, Label: label, Archived: member.IsArchived()}
}

func (s *TeamMemberService) toResponse(member *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		TeamID:    member.TeamID,
		TeamName:  member.TeamName(s.archiveName),
		Archived:  member.IsArchived(),
		CreatedAt: member.CreatedAt.Format(timestampLayout),
	}
}
