package handlers

import (
	"net/http"

	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for coached team members
type TeamMemberHandler struct {
	memberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /team-members
// @Summary Create a team member
// @Description Add a member to an existing team
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.TeamMemberRequest true "Member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateMember(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req service.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), v, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /team-members/:id
// @Summary Get team member by ID
// @Tags team-members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} service.TeamMemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 403 {object} ErrorResponse "Member outside the viewer's team"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetMember(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), v, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers handles GET /team-members
// @Summary List team members
// @Description List active members, optionally of one team. archived=true lists only the archive bucket.
// @Tags team-members
// @Produce json
// @Param team_id query string false "Team ID or 'all'"
// @Param include_archived query bool false "Also list archived members"
// @Param archived query bool false "List archived members only"
// @Success 200 {array} service.TeamMemberResponse "Successfully retrieved members"
// @Failure 403 {object} ErrorResponse "Team outside the viewer's scope"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	var (
		members []service.TeamMemberResponse
		err     error
	)
	if queryBool(c, "archived") {
		members, err = h.memberService.ListArchived(c.Request.Context(), v)
	} else {
		teamID := service.ParseTeamFilter(c.Query("team_id"))
		members, err = h.memberService.ListMembers(c.Request.Context(), v, teamID, queryBool(c, "include_archived"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember handles PUT /team-members/:id
// @Summary Update a team member
// @Description Rename a member or move them to another team; moving an archived member restores them
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body service.TeamMemberRequest true "Member data"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Member or team not found"
// @Security BearerAuth
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}
	var req service.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), v, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ArchiveMember handles POST /team-members/:id/archive
// @Summary Archive a team member
// @Description Move a member into the archive bucket; their coachings are kept
// @Tags team-members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} service.TeamMemberResponse "Member archived"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /team-members/{id}/archive [post]
func (h *TeamMemberHandler) ArchiveMember(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}

	member, err := h.memberService.ArchiveMember(c.Request.Context(), v, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /team-members/:id
// @Summary Delete a team member
// @Description Delete a member that has no coachings; archive the others instead
// @Tags team-members
// @Param id path int true "Member ID"
// @Success 204 "Successfully deleted member"
// @Failure 400 {object} ErrorResponse "Member has coachings"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteMember(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), v, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignableMembers handles GET /team-members/assignable
// @Summary Members selectable for a coaching
// @Description context=new lists active members only. context=edit with coaching_id also keeps that coaching's member even when archived.
// @Tags team-members
// @Produce json
// @Param context query string false "new or edit" default(new)
// @Param coaching_id query int false "Coaching being edited"
// @Success 200 {array} service.AssignableMember "Selectable members"
// @Failure 403 {object} ErrorResponse "Coaching outside the viewer's scope"
// @Failure 404 {object} ErrorResponse "Coaching not found"
// @Security BearerAuth
// @Router /team-members/assignable [get]
func (h *TeamMemberHandler) AssignableMembers(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	var coachingID *uint
	if c.Query("context") == "edit" {
		coachingID = optionalID(c.Query("coaching_id"))
	}

	members, err := h.memberService.AssignableMembers(c.Request.Context(), v, coachingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
