package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/metrics"
	"coaching-portal-backend/internal/period"
	"coaching-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const displayDateLayout = "02.01.2006"

// CoachingService records, reviews and lists coaching sessions
type CoachingService struct {
	repos       *repository.Repositories
	validator   *validator.Validate
	location    *time.Location
	pageSize    int
	archiveName string
	now         func() time.Time
}

// NewCoachingService creates a new coaching service
func NewCoachingService(repos *repository.Repositories, validator *validator.Validate, cfg *config.Config) *CoachingService {
	return &CoachingService{
		repos:       repos,
		validator:   validator,
		location:    cfg.Location(),
		pageSize:    cfg.PageSize,
		archiveName: cfg.ArchiveTeamName,
		now:         time.Now,
	}
}

// CoachingRequest represents the request to record or edit a coaching.
// A missing date means now.
type CoachingRequest struct {
	TeamMemberID    uint                   `json:"team_member_id" validate:"required"`
	CoachingDate    *time.Time             `json:"coaching_date,omitempty"`
	CoachingStyle   models.CoachingStyle   `json:"coaching_style" validate:"required"`
	TCAPID          *string                `json:"tcap_id,omitempty" validate:"omitempty,max=50"`
	Subject         models.CoachingSubject `json:"coaching_subject" validate:"required"`
	CoachNotes      string                 `json:"coach_notes" validate:"max=2000"`
	Checklist       models.Checklist       `json:"checklist"`
	PerformanceMark int                    `json:"performance_mark" validate:"min=0,max=10"`
	TimeSpent       int                    `json:"time_spent" validate:"required,min=1"`
}

// ReviewNotesRequest represents the reviewer notes update
type ReviewNotesRequest struct {
	Notes string `json:"notes" validate:"required,max=2000"`
}

// CoachingQuery carries the list filters. Malformed values fall back to no filter.
type CoachingQuery struct {
	Period string `form:"period"`
	TeamID string `form:"team_id"`
	Search string `form:"search"`
	Page   int    `form:"page"`
}

// CoachingResponse represents the response for coaching operations
type CoachingResponse struct {
	ID                  uint                   `json:"id"`
	TeamMemberID        uint                   `json:"team_member_id"`
	MemberName          string                 `json:"member_name"`
	TeamID              *uint                  `json:"team_id,omitempty"`
	TeamName            string                 `json:"team_name"`
	CoachID             *uint                  `json:"coach_id,omitempty"`
	CoachName           string                 `json:"coach_name"`
	CoachingDate        time.Time              `json:"coaching_date"`
	LocalDate           string                 `json:"local_date"`
	CoachingStyle       models.CoachingStyle   `json:"coaching_style"`
	TCAPID              *string                `json:"tcap_id,omitempty"`
	Subject             models.CoachingSubject `json:"coaching_subject"`
	CoachNotes          string                 `json:"coach_notes"`
	Checklist           []models.ChecklistItem `json:"checklist"`
	ChecklistPercentage float64                `json:"checklist_percentage"`
	ChecklistDisplay    string                 `json:"checklist_display"`
	PerformanceMark     int                    `json:"performance_mark"`
	OverallScore        float64                `json:"overall_score"`
	TimeSpent           int                    `json:"time_spent"`
	ReviewerNotes       *string                `json:"reviewer_notes,omitempty"`
}

// CoachingListResponse is a page of coachings
type CoachingListResponse struct {
	Coachings  []CoachingResponse `json:"coachings"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

func (s *CoachingService) validate(req *CoachingRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.CoachingStyle.IsValid() {
		return apperrors.NewValidationError("coaching_style", fmt.Sprintf("unknown coaching style %q", req.CoachingStyle))
	}
	if !req.Subject.IsValid() {
		return apperrors.NewValidationError("coaching_subject", fmt.Sprintf("unknown coaching subject %q", req.Subject))
	}
	req.Checklist.Normalize()
	for _, item := range req.Checklist.Items() {
		if !item.State.IsValid() {
			return apperrors.NewValidationError("checklist", fmt.Sprintf("invalid value %q for %s", item.State, item.Label))
		}
	}
	if req.CoachingStyle == models.CoachingStyleTCAP {
		if req.TCAPID == nil || strings.TrimSpace(*req.TCAPID) == "" {
			return apperrors.ErrTCAPIDRequired
		}
		trimmed := strings.TrimSpace(*req.TCAPID)
		req.TCAPID = &trimmed
	} else {
		req.TCAPID = nil
	}
	return nil
}

// loadTarget returns the member a coaching is recorded for, enforcing that
// archived members get no new coachings and team leads stay in their team
func (s *CoachingService) loadTarget(viewer *Viewer, memberID uint) (*models.TeamMember, error) {
	member, err := s.repos.Members.GetByID(memberID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamMemberNotFound, "load team member")
	}
	if member.IsArchived() {
		return nil, apperrors.ErrMemberArchived
	}
	if viewer.Role == models.RoleTeamLead && !viewer.LeadsTeam(member.TeamID) {
		return nil, apperrors.ErrForbidden
	}
	return member, nil
}

func (s *CoachingService) apply(c *models.Coaching, req *CoachingRequest) {
	c.TeamMemberID = req.TeamMemberID
	if req.CoachingDate != nil {
		c.CoachingDate = req.CoachingDate.UTC()
	} else if c.CoachingDate.IsZero() {
		c.CoachingDate = s.now().UTC()
	}
	c.CoachingStyle = req.CoachingStyle
	c.TCAPID = req.TCAPID
	c.Subject = req.Subject
	c.CoachNotes = strings.TrimSpace(req.CoachNotes)
	c.Checklist = req.Checklist
	c.PerformanceMark = req.PerformanceMark
	c.TimeSpent = req.TimeSpent
}

// CreateCoaching records a coaching authored by the viewer
func (s *CoachingService) CreateCoaching(ctx context.Context, viewer *Viewer, req *CoachingRequest) (*CoachingResponse, error) {
	if !viewer.Role.CanRecordCoachings() {
		return nil, apperrors.ErrForbidden
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if _, err := s.loadTarget(viewer, req.TeamMemberID); err != nil {
		return nil, err
	}

	coachID := viewer.ID
	coaching := &models.Coaching{CoachID: &coachID}
	s.apply(coaching, req)
	if err := s.repos.Coachings.Create(coaching); err != nil {
		return nil, fmt.Errorf("failed to create coaching: %w", err)
	}
	metrics.CoachingsRecorded.Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{"coaching_id": coaching.ID, "member_id": coaching.TeamMemberID}).Info("Recorded coaching")

	return s.reload(coaching.ID)
}

// GetCoaching retrieves a coaching visible to the viewer
func (s *CoachingService) GetCoaching(ctx context.Context, viewer *Viewer, id uint) (*CoachingResponse, error) {
	coaching, err := s.repos.Coachings.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCoachingNotFound, "get coaching")
	}
	if !viewer.canSeeCoaching(coaching) {
		return nil, apperrors.ErrForbidden
	}
	return s.toResponse(coaching), nil
}

// ListCoachings returns a page of coachings, newest first, scoped to the viewer
func (s *CoachingService) ListCoachings(ctx context.Context, viewer *Viewer, q CoachingQuery) (*CoachingListResponse, error) {
	filter := repository.CoachingFilter{
		Range:  period.Resolve(q.Period, s.now()),
		TeamID: ParseTeamFilter(q.TeamID),
		Scope:  viewer.Scope(),
		Search: q.Search,
	}
	page, pageSize, offset := pageBounds(q.Page, s.pageSize)

	coachings, total, err := s.repos.Coachings.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list coachings: %w", err)
	}
	return &CoachingListResponse{
		Coachings:  s.toResponses(coachings),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateCoaching edits a coaching. Only its coach or an admin may do so. The
// member already on the record may be archived; a newly chosen one may not.
func (s *CoachingService) UpdateCoaching(ctx context.Context, viewer *Viewer, id uint, req *CoachingRequest) (*CoachingResponse, error) {
	coaching, err := s.repos.Coachings.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCoachingNotFound, "get coaching")
	}
	if !viewer.IsAdmin() && !isAuthor(viewer, coaching) {
		return nil, apperrors.ErrForbidden
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.TeamMemberID != coaching.TeamMemberID {
		if _, err := s.loadTarget(viewer, req.TeamMemberID); err != nil {
			return nil, err
		}
	}

	s.apply(coaching, req)
	if err := s.repos.Coachings.Update(coaching); err != nil {
		return nil, fmt.Errorf("failed to update coaching: %w", err)
	}
	logger.WithContext(ctx).WithField("coaching_id", coaching.ID).Info("Updated coaching")

	return s.reload(coaching.ID)
}

// UpdateReviewNotes sets the reviewer notes of a coaching
func (s *CoachingService) UpdateReviewNotes(ctx context.Context, viewer *Viewer, id uint, req *ReviewNotesRequest) (*CoachingResponse, error) {
	if !viewer.Role.CanReview() {
		return nil, apperrors.ErrForbidden
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.repos.Coachings.GetByID(id); err != nil {
		return nil, notFound(err, apperrors.ErrCoachingNotFound, "get coaching")
	}
	if err := s.repos.Coachings.UpdateReviewerNotes(id, strings.TrimSpace(req.Notes)); err != nil {
		return nil, fmt.Errorf("failed to update reviewer notes: %w", err)
	}
	logger.WithContext(ctx).WithField("coaching_id", id).Info("Updated reviewer notes")

	return s.reload(id)
}

// DeleteCoaching deletes a coaching. Only admins and its coach may do so.
func (s *CoachingService) DeleteCoaching(ctx context.Context, viewer *Viewer, id uint) error {
	coaching, err := s.repos.Coachings.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrCoachingNotFound, "get coaching")
	}
	if !viewer.IsAdmin() && !isAuthor(viewer, coaching) {
		return apperrors.ErrForbidden
	}
	if err := s.repos.Coachings.Delete(id); err != nil {
		return fmt.Errorf("failed to delete coaching: %w", err)
	}
	logger.WithContext(ctx).WithField("coaching_id", id).Info("Deleted coaching")
	return nil
}

func isAuthor(viewer *Viewer, c *models.Coaching) bool {
	return c.CoachID != nil && *c.CoachID == viewer.ID
}

func (s *CoachingService) reload(id uint) (*CoachingResponse, error) {
	coaching, err := s.repos.Coachings.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCoachingNotFound, "reload coaching")
	}
	return s.toResponse(coaching), nil
}

func (s *CoachingService) toResponse(c *models.Coaching) *CoachingResponse {
	return coachingResponse(c, s.location, s.archiveName)
}

func (s *CoachingService) toResponses(coachings []models.Coaching) []CoachingResponse {
	return coachingResponses(coachings, s.location, s.archiveName)
}

func coachingResponse(c *models.Coaching, loc *time.Location, archiveName string) *CoachingResponse {
	resp := &CoachingResponse{
		ID:                  c.ID,
		TeamMemberID:        c.TeamMemberID,
		TeamName:            archiveName,
		CoachID:             c.CoachID,
		CoachName:           c.CoachName(),
		CoachingDate:        c.CoachingDate,
		LocalDate:           c.CoachingDate.In(loc).Format(displayDateLayout),
		CoachingStyle:       c.CoachingStyle,
		TCAPID:              c.TCAPID,
		Subject:             c.Subject,
		CoachNotes:          c.CoachNotes,
		Checklist:           c.Checklist.Items(),
		ChecklistPercentage: round2(c.Checklist.Percentage()),
		ChecklistDisplay:    c.Checklist.Display(),
		PerformanceMark:     c.PerformanceMark,
		OverallScore:        c.OverallScore(),
		TimeSpent:           c.TimeSpent,
		ReviewerNotes:       c.ReviewerNotes,
	}
	if c.TeamMember != nil {
		resp.MemberName = c.TeamMember.Name
		resp.TeamID = c.TeamMember.TeamID
		resp.TeamName = c.TeamMember.TeamName(archiveName)
	}
	return resp
}

func coachingResponses(coachings []models.Coaching, loc *time.Location, archiveName string) []CoachingResponse {
	out := make([]CoachingResponse, 0, len(coachings))
	for i := range coachings {
		out = append(out, *coachingResponse(&coachings[i], loc, archiveName))
	}
	return out
}
