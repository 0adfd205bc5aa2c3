package handlers

import (
	"net/http"

	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the aggregated coaching statistics
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// reportQuery reads the shared report filters. Nothing here can fail: unknown
// periods and team ids fall back to no filter further down.
func reportQuery(c *gin.Context) service.ReportQuery {
	return service.ReportQuery{
		Period:         c.Query("period"),
		TeamID:         c.Query("team_id"),
		Search:         c.Query("search"),
		IncludeArchive: queryBool(c, "include_archive"),
	}
}

// TeamPerformance handles GET /reports/teams
// @Summary Per-team rollup
// @Description Average score, time spent and coaching count per team. Teams without coachings report zeros.
// @Tags reports
// @Produce json
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Param team_id query string false "Team ID or 'all'"
// @Param include_archive query bool false "Append the archive bucket row"
// @Success 200 {array} service.TeamPerformance "Team rollup"
// @Security BearerAuth
// @Router /reports/teams [get]
func (h *ReportHandler) TeamPerformance(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	teams, err := h.reportService.TeamPerformance(c.Request.Context(), v, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// MemberPerformance handles GET /reports/teams/:id/members
// @Summary Per-member rollup
// @Description Coaching count, average score, checklist fulfillment and time per member of a team. Team 0 is the archive bucket.
// @Tags reports
// @Produce json
// @Param id path int true "Team ID, 0 for the archive"
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Success 200 {array} service.MemberPerformance "Member rollup"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Team outside the viewer's scope"
// @Security BearerAuth
// @Router /reports/teams/{id}/members [get]
func (h *ReportHandler) MemberPerformance(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var teamID uint
	if raw := c.Param("id"); raw != "0" {
		id, ok := pathID(c, "id", "team")
		if !ok {
			return
		}
		teamID = id
	}

	members, err := h.reportService.MemberPerformance(c.Request.Context(), v, teamID, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// SubjectDistribution handles GET /reports/subjects
// @Summary Subject histogram
// @Description Coachings per subject, most frequent first
// @Tags reports
// @Produce json
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Param team_id query string false "Team ID or 'all'"
// @Success 200 {array} service.SubjectBucket "Subject histogram"
// @Security BearerAuth
// @Router /reports/subjects [get]
func (h *ReportHandler) SubjectDistribution(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	buckets, err := h.reportService.SubjectDistribution(c.Request.Context(), v, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// Leaderboard handles GET /reports/leaderboard
// @Summary Top and bottom teams
// @Description Best three teams by score then count; worst three teams with at least one coaching
// @Tags reports
// @Produce json
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Success 200 {object} service.Leaderboard "Leaderboard"
// @Security BearerAuth
// @Router /reports/leaderboard [get]
func (h *ReportHandler) Leaderboard(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	board, err := h.reportService.Leaderboard(c.Request.Context(), v, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// Dashboard handles GET /reports/dashboard
// @Summary Performance dashboard
// @Description Team rollup, leaderboard, subject histogram and chart series in one response
// @Tags reports
// @Produce json
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Param team_id query string false "Team ID or 'all'"
// @Param include_archive query bool false "Append the archive bucket row"
// @Success 200 {object} service.DashboardResponse "Dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	dashboard, err := h.reportService.Dashboard(c.Request.Context(), v, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// TeamView handles GET /reports/team-view
// @Summary Team view
// @Description One team's rollup, member rollups and latest coachings. Without team_id the caller's own team is used.
// @Tags reports
// @Produce json
// @Param team_id query int false "Team ID"
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Success 200 {object} service.TeamViewResponse "Team view"
// @Failure 403 {object} ErrorResponse "Team outside the viewer's scope, or no team assigned"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /reports/team-view [get]
func (h *ReportHandler) TeamView(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	view, err := h.reportService.TeamView(c.Request.Context(), v, optionalID(c.Query("team_id")), reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// MemberTrend handles GET /team-members/:id/trend
// @Summary Member score trend
// @Description Parallel labels, scores and dates of the member's last coachings, oldest first
// @Tags reports
// @Produce json
// @Param id path int true "Member ID"
// @Param limit query int false "Number of most recent coachings; 0 or absent for all"
// @Success 200 {object} service.TrendResponse "Trend series"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 403 {object} ErrorResponse "Member outside the viewer's scope"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /team-members/{id}/trend [get]
func (h *ReportHandler) MemberTrend(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}

	trend, err := h.reportService.MemberTrend(c.Request.Context(), v, id, queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// Export handles GET /reports/export
// @Summary Export report
// @Description XLSX workbook with the team rollup and the filtered coachings
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Param team_id query string false "Team ID or 'all'"
// @Param search query string false "Matches member name, coach name or subject"
// @Success 200 {file} file "Workbook"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.Export(c.Request.Context(), v, reportQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
