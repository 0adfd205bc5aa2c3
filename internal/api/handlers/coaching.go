package handlers

import (
	"net/http"

	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachingHandler handles HTTP requests for coaching records
type CoachingHandler struct {
	coachingService service.CoachingServiceInterface
}

// NewCoachingHandler creates a new coaching handler
func NewCoachingHandler(coachingService service.CoachingServiceInterface) *CoachingHandler {
	return &CoachingHandler{
		coachingService: coachingService,
	}
}

// CreateCoaching handles POST /coachings
// @Summary Record a coaching
// @Description Record a coaching session authored by the caller. tcap_id is required for TCAP coachings and dropped otherwise.
// @Tags coachings
// @Accept json
// @Produce json
// @Param coaching body service.CoachingRequest true "Coaching data"
// @Success 201 {object} service.CoachingResponse "Successfully recorded coaching"
// @Failure 400 {object} ErrorResponse "Invalid body or archived member"
// @Failure 403 {object} ErrorResponse "Role may not record coachings, or member outside own team"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /coachings [post]
func (h *CoachingHandler) CreateCoaching(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req service.CoachingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coaching, err := h.coachingService.CreateCoaching(c.Request.Context(), v, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, coaching)
}

// GetCoaching handles GET /coachings/:id
// @Summary Get coaching by ID
// @Tags coachings
// @Produce json
// @Param id path int true "Coaching ID"
// @Success 200 {object} service.CoachingResponse "Successfully retrieved coaching"
// @Failure 400 {object} ErrorResponse "Invalid coaching ID"
// @Failure 403 {object} ErrorResponse "Coaching outside the viewer's scope"
// @Failure 404 {object} ErrorResponse "Coaching not found"
// @Security BearerAuth
// @Router /coachings/{id} [get]
func (h *CoachingHandler) GetCoaching(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "coaching")
	if !ok {
		return
	}

	coaching, err := h.coachingService.GetCoaching(c.Request.Context(), v, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coaching)
}

// ListCoachings handles GET /coachings
// @Summary List coachings
// @Description Page through coachings, newest first. Malformed filters are ignored.
// @Tags coachings
// @Produce json
// @Param period query string false "all, 7days, 30days, current_quarter, current_year or YYYY-MM"
// @Param team_id query string false "Team ID or 'all'"
// @Param search query string false "Matches member name, coach name or subject"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.CoachingListResponse "Successfully retrieved coachings"
// @Security BearerAuth
// @Router /coachings [get]
func (h *CoachingHandler) ListCoachings(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	q := service.CoachingQuery{
		Period: c.Query("period"),
		TeamID: c.Query("team_id"),
		Search: c.Query("search"),
		Page:   queryInt(c, "page", 1),
	}
	coachings, err := h.coachingService.ListCoachings(c.Request.Context(), v, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coachings)
}

// UpdateCoaching handles PUT /coachings/:id
// @Summary Update a coaching
// @Description Edit a coaching; only its coach or an admin may do so
// @Tags coachings
// @Accept json
// @Produce json
// @Param id path int true "Coaching ID"
// @Param coaching body service.CoachingRequest true "Coaching data"
// @Success 200 {object} service.CoachingResponse "Successfully updated coaching"
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 403 {object} ErrorResponse "Not the coach of this record"
// @Failure 404 {object} ErrorResponse "Coaching or member not found"
// @Security BearerAuth
// @Router /coachings/{id} [put]
func (h *CoachingHandler) UpdateCoaching(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "coaching")
	if !ok {
		return
	}
	var req service.CoachingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coaching, err := h.coachingService.UpdateCoaching(c.Request.Context(), v, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coaching)
}

// UpdateReviewNotes handles PUT /coachings/:id/review-notes
// @Summary Add reviewer notes
// @Description Set the reviewer notes of a coaching (project, quality and department leads)
// @Tags coachings
// @Accept json
// @Produce json
// @Param id path int true "Coaching ID"
// @Param notes body service.ReviewNotesRequest true "Reviewer notes"
// @Success 200 {object} service.CoachingResponse "Notes saved"
// @Failure 400 {object} ErrorResponse "Empty or too long notes"
// @Failure 403 {object} ErrorResponse "Role may not review"
// @Failure 404 {object} ErrorResponse "Coaching not found"
// @Security BearerAuth
// @Router /coachings/{id}/review-notes [put]
func (h *CoachingHandler) UpdateReviewNotes(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "coaching")
	if !ok {
		return
	}
	var req service.ReviewNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coaching, err := h.coachingService.UpdateReviewNotes(c.Request.Context(), v, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coaching)
}

// DeleteCoaching handles DELETE /coachings/:id
// @Summary Delete a coaching
// @Description Only admins and the recording coach may delete a coaching
// @Tags coachings
// @Param id path int true "Coaching ID"
// @Success 204 "Successfully deleted coaching"
// @Failure 403 {object} ErrorResponse "Not the coach of this record"
// @Failure 404 {object} ErrorResponse "Coaching not found"
// @Security BearerAuth
// @Router /coachings/{id} [delete]
func (h *CoachingHandler) DeleteCoaching(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "coaching")
	if !ok {
		return
	}

	if err := h.coachingService.DeleteCoaching(c.Request.Context(), v, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
