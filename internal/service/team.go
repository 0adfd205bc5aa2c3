package service

import (
	"context"
	"fmt"
	"strings"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TeamService handles business logic for teams
type TeamService struct {
	repos       *repository.Repositories
	tx          repository.TransactorInterface
	leadership  *LeadershipManager
	validator   *validator.Validate
	archiveName string
}

// NewTeamService creates a new team service
func NewTeamService(repos *repository.Repositories, tx repository.TransactorInterface, leadership *LeadershipManager, validator *validator.Validate, cfg *config.Config) *TeamService {
	return &TeamService{
		repos:       repos,
		tx:          tx,
		leadership:  leadership,
		validator:   validator,
		archiveName: cfg.ArchiveTeamName,
	}
}

// TeamRequest represents the request to create or update a team. A nil
// leader leaves the team without one.
type TeamRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	LeaderID *uint  `json:"leader_id,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	LeaderID    *uint  `json:"leader_id,omitempty"`
	LeaderName  string `json:"leader_name,omitempty"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (s *TeamService) checkName(repos *repository.Repositories, name string, selfID uint) error {
	if models.IsReservedTeamName(name, s.archiveName) {
		return apperrors.ErrReservedTeamName
	}
	existing, err := repos.Teams.GetByNameInsensitive(name)
	if err == nil && existing.ID != selfID {
		return apperrors.ErrTeamExists
	}
	if err != nil && !isRecordNotFound(err) {
		return fmt.Errorf("failed to check team name: %w", err)
	}
	return nil
}

// CreateTeam creates a team, optionally led by a team lead
func (s *TeamService) CreateTeam(ctx context.Context, viewer *Viewer, req *TeamRequest) (*TeamResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{Name: strings.TrimSpace(req.Name)}
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := s.checkName(repos, team.Name, 0); err != nil {
			return err
		}
		if err := repos.Teams.Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if req.LeaderID == nil {
			return nil
		}
		leader, err := repos.Users.GetByID(*req.LeaderID)
		if err != nil {
			return notFound(err, apperrors.ErrLeaderNotFound, "load leader")
		}
		return s.leadership.Assign(ctx, repos, team, leader)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"team_id": team.ID, "name": team.Name}).Info("Created team")
	return s.toResponse(team, 0), nil
}

// GetTeam retrieves a team with its leader and member count
func (s *TeamService) GetTeam(ctx context.Context, viewer *Viewer, id uint) (*TeamResponse, error) {
	if !viewer.Role.HasFullVisibility() && !viewer.LeadsTeam(&id) {
		return nil, apperrors.ErrForbidden
	}
	team, err := s.repos.Teams.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	members, err := s.repos.Teams.CountMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	resp := s.toResponse(team, members)
	if team.LeaderID != nil {
		if leader, err := s.repos.Users.GetByID(*team.LeaderID); err == nil {
			resp.LeaderName = leader.Username
		}
	}
	return resp, nil
}

// ListTeams returns every team, or only the led team for scoped viewers
func (s *TeamService) ListTeams(ctx context.Context, viewer *Viewer) ([]TeamResponse, error) {
	teams, err := s.repos.Teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		if !viewer.Role.HasFullVisibility() && !viewer.LeadsTeam(&teams[i].ID) {
			continue
		}
		out = append(out, *s.toResponse(&teams[i], 0))
	}
	return out, nil
}

// UpdateTeam renames a team and reassigns or removes its leader
func (s *TeamService) UpdateTeam(ctx context.Context, viewer *Viewer, id uint, req *TeamRequest) (*TeamResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var team *models.Team
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		team, err = repos.Teams.GetByID(id)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "get team")
		}
		name := strings.TrimSpace(req.Name)
		if err := s.checkName(repos, name, team.ID); err != nil {
			return err
		}
		team.Name = name
		if err := repos.Teams.Update(team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}

		if req.LeaderID == nil {
			return s.leadership.Vacate(ctx, repos, team)
		}
		leader, err := repos.Users.GetByID(*req.LeaderID)
		if err != nil {
			return notFound(err, apperrors.ErrLeaderNotFound, "load leader")
		}
		return s.leadership.Assign(ctx, repos, team, leader)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Updated team")
	return s.toResponse(team, 0), nil
}

// DeleteTeam deletes an empty team after detaching its leader. Archived
// members no longer point at a team, so only active members block deletion.
func (s *TeamService) DeleteTeam(ctx context.Context, viewer *Viewer, id uint) error {
	if err := requireManage(viewer); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		team, err := repos.Teams.GetByID(id)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "get team")
		}
		members, err := repos.Teams.CountMembers(team.ID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if members > 0 {
			return apperrors.ErrTeamHasMembers
		}
		if err := s.leadership.Vacate(ctx, repos, team); err != nil {
			return err
		}
		if err := repos.Teams.Delete(team.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		logger.WithContext(ctx).WithField("team_id", team.ID).Info("Deleted team")
		return nil
	})
}

func (s *TeamService) toResponse(team *models.Team, members int64) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		LeaderID:    team.LeaderID,
		MemberCount: members,
		CreatedAt:   team.CreatedAt.Format(timestampLayout),
		UpdatedAt:   team.UpdatedAt.Format(timestampLayout),
	}
}
