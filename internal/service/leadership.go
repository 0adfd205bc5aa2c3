package service

import (
	"context"
	"fmt"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/metrics"
	"coaching-portal-backend/internal/repository"
)

// LeadershipManager keeps Team.LeaderID and User.LedTeamID pointing at each other.
// Every method must run on repositories bound to the caller's transaction.
type LeadershipManager struct{}

// NewLeadershipManager creates a new leadership manager
func NewLeadershipManager() *LeadershipManager {
	return &LeadershipManager{}
}

// IsPaired reports whether team and user already point at each other
func IsPaired(team *models.Team, user *models.User) bool {
	return team.LeaderID != nil && *team.LeaderID == user.ID &&
		user.LedTeamID != nil && *user.LedTeamID == team.ID
}

// Assign makes user the leader of team. A previous leader of team and a
// team previously led by user are detached first.
func (m *LeadershipManager) Assign(ctx context.Context, repos *repository.Repositories, team *models.Team, user *models.User) error {
	if !user.IsTeamLead() {
		return apperrors.ErrLeaderNotTeamLead
	}
	if IsPaired(team, user) {
		return nil
	}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"team_id": team.ID, "user_id": user.ID})

	prevLeaders, err := repos.Users.DetachTeam(team.ID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to detach previous leader: %w", err)
	}
	prevTeams, err := repos.Teams.DetachLeader(user.ID, team.ID)
	if err != nil {
		return fmt.Errorf("failed to detach previous team: %w", err)
	}
	log.WithFields(map[string]interface{}{"previous_leaders": prevLeaders, "previous_teams": prevTeams}).Debug("Detached stale leadership pointers")

	if err := repos.Teams.SetLeader(team.ID, &user.ID); err != nil {
		return fmt.Errorf("failed to set team leader: %w", err)
	}
	if err := repos.Users.SetLedTeam(user.ID, &team.ID); err != nil {
		return fmt.Errorf("failed to set led team: %w", err)
	}

	teamID, userID := team.ID, user.ID
	team.LeaderID = &userID
	user.LedTeamID = &teamID

	metrics.LeadershipChanged("detach", prevLeaders+prevTeams)
	metrics.LeadershipChanged("attach", 1)
	log.Info("Assigned team leader")
	return nil
}

// Release removes user from whatever team they lead. Only teams whose
// leader is still user are touched.
func (m *LeadershipManager) Release(ctx context.Context, repos *repository.Repositories, user *models.User) error {
	detached, err := repos.Teams.DetachLeader(user.ID, 0)
	if err != nil {
		return fmt.Errorf("failed to detach led team: %w", err)
	}
	if user.LedTeamID != nil {
		if err := repos.Users.SetLedTeam(user.ID, nil); err != nil {
			return fmt.Errorf("failed to clear led team: %w", err)
		}
		user.LedTeamID = nil
	}
	if detached > 0 {
		metrics.LeadershipChanged("detach", detached)
		logger.WithContext(ctx).WithField("user_id", user.ID).Info("Released team leadership")
	}
	return nil
}

// Vacate leaves team without a leader and clears the leader's back pointer
func (m *LeadershipManager) Vacate(ctx context.Context, repos *repository.Repositories, team *models.Team) error {
	detached, err := repos.Users.DetachTeam(team.ID, 0)
	if err != nil {
		return fmt.Errorf("failed to detach leader: %w", err)
	}
	if team.LeaderID != nil {
		if err := repos.Teams.SetLeader(team.ID, nil); err != nil {
			return fmt.Errorf("failed to clear team leader: %w", err)
		}
		team.LeaderID = nil
	}
	if detached > 0 {
		metrics.LeadershipChanged("detach", detached)
		logger.WithContext(ctx).WithField("team_id", team.ID).Info("Vacated team leadership")
	}
	return nil
}
