package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/repository"
	"coaching-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func statsRows() []repository.TeamStatsRow {
	return []repository.TeamStatsRow{
		{TeamID: 1, TeamName: "Alpha", CoachingCount: 2, AvgScore: 70, TotalTime: 75},
		{TeamID: 2, TeamName: "Beta", CoachingCount: 0},
		{TeamID: 3, TeamName: "Gamma", CoachingCount: 1, AvgScore: 90, TotalTime: 20},
	}
}

func TestTeamPerformanceKeepsEmptyTeams(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows(), nil)

	teams, err := svc.TeamPerformance(context.Background(), admin(), service.ReportQuery{})

	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, 70.0, teams[0].AvgScore)
	assert.Equal(t, 37.5, teams[0].AvgTime)
	assert.False(t, teams[0].MeetsBenchmark)
	assert.Equal(t, int64(0), teams[1].CoachingCount)
	assert.True(t, teams[2].MeetsBenchmark)
}

func TestTeamPerformanceWithArchive(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows()[:1], nil)
	f.coachings.EXPECT().
		Aggregate(gomock.Any()).
		DoAndReturn(func(filter repository.CoachingFilter) (*repository.AggregateRow, error) {
			assert.True(t, filter.Archived)
			return &repository.AggregateRow{CoachingCount: 1, AvgScore: 50, TotalTime: 10}, nil
		})

	teams, err := svc.TeamPerformance(context.Background(), admin(), service.ReportQuery{IncludeArchive: true})

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.True(t, teams[1].Archive)
	assert.Equal(t, models.DefaultArchiveTeamName, teams[1].TeamName)
}

func TestTeamPerformanceScopedViewerDropsForeignEmptyTeams(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().
		TeamStats(gomock.Any()).
		DoAndReturn(func(filter repository.CoachingFilter) ([]repository.TeamStatsRow, error) {
			require.NotNil(t, filter.Scope)
			return []repository.TeamStatsRow{
				{TeamID: 1, TeamName: "Alpha"},
				{TeamID: 2, TeamName: "Beta"},
				{TeamID: 3, TeamName: "Gamma", CoachingCount: 1, AvgScore: 60},
			}, nil
		})

	teams, err := svc.TeamPerformance(context.Background(), teamLead(5, uintPtr(1)), service.ReportQuery{})

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].TeamName)
	assert.Equal(t, "Gamma", teams[1].TeamName)
}

func TestTeamPerformanceIsIdempotent(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows(), nil).Times(2)

	first, err := svc.TeamPerformance(context.Background(), admin(), service.ReportQuery{Period: "2024-02"})
	require.NoError(t, err)
	second, err := svc.TeamPerformance(context.Background(), admin(), service.ReportQuery{Period: "2024-02"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLeaderboard(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows(), nil)

	board, err := svc.Leaderboard(context.Background(), admin(), service.ReportQuery{})

	require.NoError(t, err)
	require.Len(t, board.Top, 3)
	assert.Equal(t, "Gamma", board.Top[0].TeamName)
	require.Len(t, board.Bottom, 2)
	assert.Equal(t, "Alpha", board.Bottom[0].TeamName)
}

func TestMemberPerformanceForbiddenForOtherTeam(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)

	_, err := svc.MemberPerformance(context.Background(), teamLead(5, uintPtr(1)), 2, service.ReportQuery{})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMemberPerformance(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	alpha := team(1, "Alpha", nil)
	f.members.EXPECT().GetByTeam(uint(1)).Return([]models.TeamMember{*member(3, "M1", alpha)}, nil)
	f.coachings.EXPECT().
		Find(gomock.Any()).
		DoAndReturn(func(filter repository.CoachingFilter) ([]models.Coaching, error) {
			assert.Equal(t, uint(1), *filter.TeamID)
			return []models.Coaching{
				{TeamMemberID: 3, PerformanceMark: 8, TimeSpent: 30},
				{TeamMemberID: 3, PerformanceMark: 6, TimeSpent: 40},
			}, nil
		})

	rows, err := svc.MemberPerformance(context.Background(), admin(), 1, service.ReportQuery{TeamID: "2"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 70.0, rows[0].AvgScore)
	assert.Equal(t, 70, rows[0].TotalTime)
	assert.Equal(t, "1 hrs 10 min", rows[0].TotalTimeDisplay)
}

func TestMemberPerformanceArchive(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.members.EXPECT().GetArchived().Return([]models.TeamMember{*member(9, "Old", nil)}, nil)
	f.coachings.EXPECT().
		Find(gomock.Any()).
		DoAndReturn(func(filter repository.CoachingFilter) ([]models.Coaching, error) {
			assert.True(t, filter.Archived)
			assert.Nil(t, filter.TeamID)
			return nil, nil
		})

	rows, err := svc.MemberPerformance(context.Background(), admin(), 0, service.ReportQuery{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.DefaultArchiveTeamName, rows[0].TeamName)
}

func TestSubjectDistribution(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().SubjectCounts(gomock.Any()).Return([]repository.SubjectCountRow{{Subject: "Sales", Count: 4}, {Subject: "", Count: 1}}, nil)

	got, err := svc.SubjectDistribution(context.Background(), admin(), service.ReportQuery{})

	require.NoError(t, err)
	assert.Equal(t, []service.SubjectBucket{{Subject: "Sales", Count: 4}}, got)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows(), nil)
	f.coachings.EXPECT().SubjectCounts(gomock.Any()).Return([]repository.SubjectCountRow{{Subject: "Sales", Count: 3}}, nil)

	dash, err := svc.Dashboard(context.Background(), admin(), service.ReportQuery{})

	require.NoError(t, err)
	assert.Equal(t, "all", dash.Period)
	assert.Equal(t, 80.0, dash.Benchmark)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, dash.ChartLabels)
	assert.Equal(t, []float64{70, 0, 90}, dash.ChartScores)
	assert.Len(t, dash.PeriodOptions, 5+12)
	assert.Len(t, dash.Subjects, 1)
}

func TestTeamViewWithoutTeam(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)

	_, err := svc.TeamView(context.Background(), teamLead(5, nil), nil, service.ReportQuery{})

	assert.ErrorIs(t, err, apperrors.ErrUserNotAssignedToTeam)
}

func TestTeamViewLimitsRecent(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	alpha := team(1, "Alpha", uintPtr(5))
	m1 := member(3, "M1", alpha)
	coachings := make([]models.Coaching, 25)
	for i := range coachings {
		coachings[i] = models.Coaching{BaseModel: models.BaseModel{ID: uint(i + 1)}, TeamMemberID: 3, TeamMember: m1, PerformanceMark: 5, TimeSpent: 10}
	}
	f.teams.EXPECT().GetByID(uint(1)).Return(alpha, nil)
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return([]repository.TeamStatsRow{{TeamID: 1, TeamName: "Alpha", CoachingCount: 25, AvgScore: 50, TotalTime: 250}}, nil)
	f.members.EXPECT().GetByTeam(uint(1)).Return([]models.TeamMember{*m1}, nil)
	f.coachings.EXPECT().Find(gomock.Any()).Return(coachings, nil)

	view, err := svc.TeamView(context.Background(), teamLead(5, uintPtr(1)), nil, service.ReportQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(25), view.Team.CoachingCount)
	assert.Len(t, view.Recent, service.RecentCoachingsLimit)
	require.Len(t, view.Members, 1)
	assert.Equal(t, 25, view.Members[0].CoachingCount)
}

func TestMemberTrendOldestFirst(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	f.members.EXPECT().GetByID(uint(3)).Return(member(3, "M1", team(1, "Alpha", nil)), nil)
	f.coachings.EXPECT().GetByMember(uint(3), 2).Return([]models.Coaching{
		{PerformanceMark: 9, CoachingDate: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{PerformanceMark: 6, CoachingDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}, nil)

	trend, err := svc.MemberTrend(context.Background(), admin(), 3, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"Coaching 1", "Coaching 2"}, trend.Labels)
	assert.Equal(t, []float64{60, 90}, trend.Scores)
	assert.Equal(t, []string{"01.03.2024", "02.03.2024"}, trend.Dates)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	svc := service.NewReportService(f.repos, f.cfg)
	m1 := member(3, "M1", team(1, "Alpha", nil))
	f.coachings.EXPECT().TeamStats(gomock.Any()).Return(statsRows()[:1], nil)
	f.coachings.EXPECT().Find(gomock.Any()).Return([]models.Coaching{
		{TeamMemberID: 3, TeamMember: m1, PerformanceMark: 8, TimeSpent: 30, CoachingStyle: models.CoachingStyleTCAP, TCAPID: strPtr("T-1")},
	}, nil)

	data, name, err := svc.Export(context.Background(), admin(), service.ReportQuery{})

	require.NoError(t, err)
	assert.Contains(t, name, "coaching_report_")
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()
	v, err := wb.GetCellValue("Coachings", "F2")
	require.NoError(t, err)
	assert.Equal(t, "T-1", v)
	v, err = wb.GetCellValue("Teams", "C2")
	require.NoError(t, err)
	assert.Equal(t, "70.00", v)
}
