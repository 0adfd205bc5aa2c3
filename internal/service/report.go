package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/export"
	"coaching-portal-backend/internal/metrics"
	"coaching-portal-backend/internal/period"
	"coaching-portal-backend/internal/repository"
)

const (
	// RecentCoachingsLimit is how many coachings the team view lists
	RecentCoachingsLimit = 20
	periodOptionMonths   = 12
)

// ReportService computes team and member statistics over filtered coachings.
// It never writes to the store.
type ReportService struct {
	repos       *repository.Repositories
	location    *time.Location
	benchmark   float64
	archiveName string
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(repos *repository.Repositories, cfg *config.Config) *ReportService {
	return &ReportService{
		repos:       repos,
		location:    cfg.Location(),
		benchmark:   cfg.PerformanceBenchmark,
		archiveName: cfg.ArchiveTeamName,
		now:         time.Now,
	}
}

// ReportQuery carries the report filters. Malformed values fall back to no filter.
type ReportQuery struct {
	Period         string `form:"period"`
	TeamID         string `form:"team_id"`
	Search         string `form:"search"`
	IncludeArchive bool   `form:"include_archive"`
}

// DashboardResponse is the performance dashboard
type DashboardResponse struct {
	Period        string            `json:"period"`
	PeriodOptions []period.Option   `json:"period_options"`
	Benchmark     float64           `json:"benchmark"`
	Teams         []TeamPerformance `json:"teams"`
	Leaderboard   Leaderboard       `json:"leaderboard"`
	Subjects      []SubjectBucket   `json:"subjects"`
	ChartLabels   []string          `json:"chart_labels"`
	ChartScores   []float64         `json:"chart_scores"`
}

// TeamViewResponse is one team's rollup, member rollups and latest coachings
type TeamViewResponse struct {
	Team    TeamPerformance     `json:"team"`
	Members []MemberPerformance `json:"members"`
	Recent  []CoachingResponse  `json:"recent"`
}

// TrendResponse is a member's score series, oldest first
type TrendResponse struct {
	MemberID uint      `json:"member_id"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
	Dates    []string  `json:"dates"`
}

func (s *ReportService) filter(viewer *Viewer, q ReportQuery) repository.CoachingFilter {
	return repository.CoachingFilter{
		Range:  period.Resolve(q.Period, s.now()),
		TeamID: ParseTeamFilter(q.TeamID),
		Scope:  viewer.Scope(),
		Search: q.Search,
	}
}

// TeamPerformance rolls up coachings per team. Teams without coachings are
// reported with zero values; scoped viewers only get their own team plus
// teams holding coachings they authored. The archive row is appended when
// requested and no team filter is set.
func (s *ReportService) TeamPerformance(ctx context.Context, viewer *Viewer, q ReportQuery) ([]TeamPerformance, error) {
	defer metrics.ObserveReport("team_performance", time.Now())
	return s.teamPerformance(viewer, s.filter(viewer, q), q.IncludeArchive)
}

func (s *ReportService) teamPerformance(viewer *Viewer, filter repository.CoachingFilter, includeArchive bool) ([]TeamPerformance, error) {
	rows, err := s.repos.Coachings.TeamStats(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute team statistics: %w", err)
	}

	scoped := filter.Scope != nil
	teams := make([]TeamPerformance, 0, len(rows)+1)
	for _, row := range rows {
		if scoped && row.CoachingCount == 0 && !viewer.LeadsTeam(&row.TeamID) {
			continue
		}
		teams = append(teams, teamPerformanceFromRow(row, s.benchmark))
	}

	if includeArchive && filter.TeamID == nil {
		archived := filter
		archived.Archived = true
		agg, err := s.repos.Coachings.Aggregate(archived)
		if err != nil {
			return nil, fmt.Errorf("failed to compute archive statistics: %w", err)
		}
		teams = append(teams, archivePerformance(agg, s.archiveName, s.benchmark))
	}
	return teams, nil
}

// MemberPerformance rolls up coachings per member of one team. Team ID 0
// selects the archive bucket.
func (s *ReportService) MemberPerformance(ctx context.Context, viewer *Viewer, teamID uint, q ReportQuery) ([]MemberPerformance, error) {
	defer metrics.ObserveReport("member_performance", time.Now())

	filter := s.filter(viewer, q)
	var (
		members []models.TeamMember
		err     error
	)
	if teamID == 0 {
		if !viewer.Role.HasFullVisibility() {
			return nil, apperrors.ErrForbidden
		}
		filter.TeamID = nil
		filter.Archived = true
		members, err = s.repos.Members.GetArchived()
	} else {
		if !viewer.Role.HasFullVisibility() && !viewer.LeadsTeam(&teamID) {
			return nil, apperrors.ErrForbidden
		}
		filter.TeamID = &teamID
		members, err = s.repos.Members.GetByTeam(teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	coachings, err := s.repos.Coachings.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load coachings: %w", err)
	}
	return RollupMembers(members, coachings, s.archiveName), nil
}

// SubjectDistribution counts coachings per subject, most frequent first
func (s *ReportService) SubjectDistribution(ctx context.Context, viewer *Viewer, q ReportQuery) ([]SubjectBucket, error) {
	defer metrics.ObserveReport("subject_distribution", time.Now())

	rows, err := s.repos.Coachings.SubjectCounts(s.filter(viewer, q))
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}
	return subjectBuckets(rows), nil
}

// Leaderboard returns the top and bottom teams for the filters
func (s *ReportService) Leaderboard(ctx context.Context, viewer *Viewer, q ReportQuery) (*Leaderboard, error) {
	defer metrics.ObserveReport("leaderboard", time.Now())

	teams, err := s.teamPerformance(viewer, s.filter(viewer, q), false)
	if err != nil {
		return nil, err
	}
	board := RankTeams(teams, LeaderboardSize)
	return &board, nil
}

// Dashboard combines the team rollup, leaderboard and subject histogram
func (s *ReportService) Dashboard(ctx context.Context, viewer *Viewer, q ReportQuery) (*DashboardResponse, error) {
	defer metrics.ObserveReport("dashboard", time.Now())

	filter := s.filter(viewer, q)
	teams, err := s.teamPerformance(viewer, filter, q.IncludeArchive)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos.Coachings.SubjectCounts(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}

	labels := make([]string, 0, len(teams))
	scores := make([]float64, 0, len(teams))
	for _, t := range teams {
		labels = append(labels, t.TeamName)
		scores = append(scores, t.AvgScore)
	}

	selected := q.Period
	if selected == "" {
		selected = period.All
	}
	return &DashboardResponse{
		Period:        selected,
		PeriodOptions: period.Options(s.now().In(s.location), periodOptionMonths),
		Benchmark:     s.benchmark,
		Teams:         teams,
		Leaderboard:   RankTeams(teams, LeaderboardSize),
		Subjects:      subjectBuckets(rows),
		ChartLabels:   labels,
		ChartScores:   scores,
	}, nil
}

// TeamView returns a team's rollup, its member rollups and its latest coachings.
// A nil team ID means the viewer's own team.
func (s *ReportService) TeamView(ctx context.Context, viewer *Viewer, teamID *uint, q ReportQuery) (*TeamViewResponse, error) {
	defer metrics.ObserveReport("team_view", time.Now())

	if teamID == nil {
		teamID = viewer.LedTeamID
	}
	if teamID == nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}
	if !viewer.Role.HasFullVisibility() && !viewer.LeadsTeam(teamID) {
		return nil, apperrors.ErrForbidden
	}
	team, err := s.repos.Teams.GetByID(*teamID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}

	filter := s.filter(viewer, q)
	filter.TeamID = &team.ID

	rows, err := s.repos.Coachings.TeamStats(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute team statistics: %w", err)
	}
	summary := teamPerformanceFromRow(repository.TeamStatsRow{TeamID: team.ID, TeamName: team.Name, LeaderID: team.LeaderID}, s.benchmark)
	if len(rows) > 0 {
		summary = teamPerformanceFromRow(rows[0], s.benchmark)
	}

	members, err := s.repos.Members.GetByTeam(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	coachings, err := s.repos.Coachings.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load coachings: %w", err)
	}

	recent := coachings
	if len(recent) > RecentCoachingsLimit {
		recent = recent[:RecentCoachingsLimit]
	}
	return &TeamViewResponse{
		Team:    summary,
		Members: RollupMembers(members, coachings, s.archiveName),
		Recent:  coachingResponses(recent, s.location, s.archiveName),
	}, nil
}

// MemberTrend returns the member's last limit scores, all of them when limit <= 0
func (s *ReportService) MemberTrend(ctx context.Context, viewer *Viewer, memberID uint, limit int) (*TrendResponse, error) {
	member, err := s.repos.Members.GetByID(memberID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	if !viewer.canSeeMember(member) {
		return nil, apperrors.ErrForbidden
	}

	coachings, err := s.repos.Coachings.GetByMember(member.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load coachings: %w", err)
	}

	resp := &TrendResponse{
		MemberID: member.ID,
		Labels:   make([]string, 0, len(coachings)),
		Scores:   make([]float64, 0, len(coachings)),
		Dates:    make([]string, 0, len(coachings)),
	}
	for i := len(coachings) - 1; i >= 0; i-- {
		resp.Labels = append(resp.Labels, "Coaching "+strconv.Itoa(len(resp.Labels)+1))
		resp.Scores = append(resp.Scores, coachings[i].OverallScore())
		resp.Dates = append(resp.Dates, coachings[i].CoachingDate.In(s.location).Format(displayDateLayout))
	}
	return resp, nil
}

// Export renders the team rollup and the filtered coachings as an XLSX workbook
func (s *ReportService) Export(ctx context.Context, viewer *Viewer, q ReportQuery) ([]byte, string, error) {
	defer metrics.ObserveReport("export", time.Now())

	filter := s.filter(viewer, q)
	teams, err := s.teamPerformance(viewer, filter, q.IncludeArchive)
	if err != nil {
		return nil, "", err
	}
	coachings, err := s.repos.Coachings.Find(filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load coachings: %w", err)
	}

	wb, err := export.NewWorkbook([]export.SheetSpec{teamSheet(teams), s.coachingSheet(coachings)})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}
	defer wb.Close()

	data, err := wb.Bytes()
	if err != nil {
		return nil, "", err
	}
	return data, export.FileName("coaching_report", s.now().In(s.location)), nil
}

func teamSheet(teams []TeamPerformance) export.SheetSpec {
	spec := export.SheetSpec{
		Title:  "Teams",
		Header: []string{"Team", "Coachings", "Ø Score (%)", "Zeit gesamt (min)", "Ø Zeit (min)", "Benchmark erreicht"},
	}
	for _, t := range teams {
		reached := "Nein"
		if t.MeetsBenchmark {
			reached = "Ja"
		}
		spec.Rows = append(spec.Rows, []string{
			t.TeamName,
			strconv.FormatInt(t.CoachingCount, 10),
			strconv.FormatFloat(t.AvgScore, 'f', 2, 64),
			strconv.FormatInt(t.TotalTime, 10),
			strconv.FormatFloat(t.AvgTime, 'f', 2, 64),
			reached,
		})
	}
	return spec
}

func (s *ReportService) coachingSheet(coachings []models.Coaching) export.SheetSpec {
	spec := export.SheetSpec{
		Title: "Coachings",
		Header: []string{"Datum", "Teammitglied", "Team", "Coach", "Stil", "TCAP-ID", "Thema",
			"Checkliste", "Checkliste (%)", "Note", "Score (%)", "Zeit (min)", "Coach-Notizen", "Reviewer-Notizen"},
	}
	for _, r := range coachingResponses(coachings, s.location, s.archiveName) {
		tcap, review := "", ""
		if r.TCAPID != nil {
			tcap = *r.TCAPID
		}
		if r.ReviewerNotes != nil {
			review = *r.ReviewerNotes
		}
		spec.Rows = append(spec.Rows, []string{
			r.LocalDate,
			r.MemberName,
			r.TeamName,
			r.CoachName,
			string(r.CoachingStyle),
			tcap,
			string(r.Subject),
			r.ChecklistDisplay,
			strconv.FormatFloat(r.ChecklistPercentage, 'f', 2, 64),
			strconv.Itoa(r.PerformanceMark),
			strconv.FormatFloat(r.OverallScore, 'f', 2, 64),
			strconv.Itoa(r.TimeSpent),
			r.CoachNotes,
			review,
		})
	}
	return spec
}
