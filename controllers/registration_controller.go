package controllers

import (
	"net/http"

	"admin-backend/middleware"
	"admin-backend/services"
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

const registrationsIndexPath = "/registrations"

type RegistrationController struct {
	RegistrationSvc *services.RegistrationService
}

func NewRegistrationController(svc *services.RegistrationService) *RegistrationController {
	return &RegistrationController{RegistrationSvc: svc}
}

// GET /api/registrations
func (ctrl *RegistrationController) GetRegistrations(c *gin.Context) {
	ctx := c.Request.Context()
	lq := utils.ParseListQuery(c.Request, services.DefaultRegistrationSort, "desc", utils.RegistrationPageOpts)

	page, filters, err := ctrl.RegistrationSvc.List(ctx, lq)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}
	dist, err := ctrl.RegistrationSvc.GradeDistribution(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}
	sum, err := ctrl.RegistrationSvc.Summary(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"registrations":       page,
		"total_students":      sum.TotalStudents,
		"total_registrations": sum.TotalRegistrations,
		"average_grade":       sum.AverageGrade,
		"grade_distribution":  dist,
		"filters":             filters,
	})
}

// GET /api/registrations/form
func (ctrl *RegistrationController) GetRegistrationForm(c *gin.Context) {
	opts, err := ctrl.RegistrationSvc.FormOptions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, opts)
}

// GET /api/registrations/:id/edit
func (ctrl *RegistrationController) EditRegistration(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	reg, err := ctrl.RegistrationSvc.Get(ctx, id)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}
	opts, err := ctrl.RegistrationSvc.FormOptions(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"registration": reg,
		"students":     opts.Students,
		"courses":      opts.Courses,
	})
}

// POST /api/registrations
func (ctrl *RegistrationController) CreateRegistration(c *gin.Context) {
	var payload services.CreateRegistrationInput
	if !bindJSON(c, &payload) {
		return
	}

	reg, err := ctrl.RegistrationSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}

	utils.JSONAction(c, http.StatusCreated, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgRegistrationCreated),
		Redirect: backURL(c, registrationsIndexPath),
		Data:     gin.H{"id": reg.ID},
	})
}

// PUT|PATCH /api/registrations/:id
func (ctrl *RegistrationController) UpdateRegistration(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload services.UpdateGradeInput
	if !bindJSON(c, &payload) {
		return
	}

	reg, err := ctrl.RegistrationSvc.UpdateGrade(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}

	utils.JSONAction(c, http.StatusOK, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgRegistrationUpdated),
		Redirect: backURL(c, registrationsIndexPath),
		Data:     gin.H{"id": reg.ID, "grade": reg.Grade},
	})
}

// DELETE /api/registrations/:id
func (ctrl *RegistrationController) DeleteRegistration(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.RegistrationSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, utils.MsgRegistrationMissing)
		return
	}

	utils.JSONAction(c, http.StatusOK, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgRegistrationDeleted),
		Redirect: backURL(c, registrationsIndexPath),
	})
}

// GET /api/registrations/stats
func (ctrl *RegistrationController) GetRegistrationStats(c *gin.Context) {
	ctx := c.Request.Context()

	courseStats, err := ctrl.RegistrationSvc.CourseStats(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	semesterStats, err := ctrl.RegistrationSvc.SemesterStats(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"course_stats":   courseStats,
		"semester_stats": semesterStats,
	})
}
