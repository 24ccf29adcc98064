package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/app/services"
	"github.com/iac-center/praktika-backend/internal/middleware"
)

// StudentController handles registration and student lifecycle operations
type StudentController struct {
	registrationService services.RegistrationService
	lifecycleService    services.LifecycleService
}

// NewStudentController creates a new StudentController
func NewStudentController(registrationService services.RegistrationService, lifecycleService services.LifecycleService) *StudentController {
	return &StudentController{
		registrationService: registrationService,
		lifecycleService:    lifecycleService,
	}
}

// Register handles student self-registration
// @Summary Register for an internship
// @Description Creates a student record for the authenticated Telegram identity
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterStudentRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var form dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&form); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration form")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	telegramID := ctx.GetString(middleware.ContextTelegramID)
	student, err := c.registrationService.Register(ctx, telegramID, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// GetMyStatus returns the caller's own student record
// @Summary Get own registration status
// @Description Returns the student record of the authenticated caller
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student record"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Not registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetMyStatus(ctx *gin.Context) {
	telegramID := ctx.GetString(middleware.ContextTelegramID)
	student, err := c.registrationService.GetStatus(ctx, telegramID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// SubmitReport stores the caller's report document URL
// @Summary Submit internship report
// @Description Stores the report document URL for the authenticated student, at most once
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitReportRequest true "Report document URL"
// @Success 200 {object} dto.APIResponse "Report submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Not registered"
// @Failure 409 {object} dto.ErrorResponse "Report already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me/report [post]
func (c *StudentController) SubmitReport(ctx *gin.Context) {
	var req dto.SubmitReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	telegramID := ctx.GetString(middleware.ContextTelegramID)
	if err := c.lifecycleService.SubmitReport(ctx, telegramID, req.ReportDocURL); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"submitted": true}))
}

// ListStudents retrieves all student records
// @Summary List all students
// @Description Retrieves every student record, administrators only
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.lifecycleService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ListMyStudents retrieves the students assigned to the calling curator
// @Summary List own students
// @Description Retrieves the students assigned to the authenticated curator
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/mine [get]
func (c *StudentController) ListMyStudents(ctx *gin.Context) {
	telegramID := ctx.GetString(middleware.ContextTelegramID)
	students, err := c.lifecycleService.ListStudentsOfCurator(ctx, telegramID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ConfirmStudent confirms a student and assigns the named curator
// @Summary Confirm a student
// @Description Marks the student confirmed, assigns the curator and notifies the student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Param request body dto.ConfirmStudentRequest true "Curator assignment"
// @Success 200 {object} dto.APIResponse "Student confirmed"
// @Failure 400 {object} dto.ErrorResponse "Curator name missing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId}/confirm [post]
func (c *StudentController) ConfirmStudent(ctx *gin.Context) {
	var req dto.ConfirmStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Curator name is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.lifecycleService.ConfirmStudent(ctx, ctx.Param("telegramId"), req.CuratorName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"confirmed": true}))
}

// AssignCurator sets a student's curator without confirming
// @Summary Assign a curator
// @Description Assigns the named curator to the student without confirmation or notification
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Param request body dto.AssignCuratorRequest true "Curator assignment"
// @Success 200 {object} dto.APIResponse "Curator assigned"
// @Failure 400 {object} dto.ErrorResponse "Curator name missing"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId}/curator [put]
func (c *StudentController) AssignCurator(ctx *gin.Context) {
	var req dto.AssignCuratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Curator name is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.lifecycleService.AssignCurator(ctx, ctx.Param("telegramId"), req.CuratorName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"assigned": true}))
}

// UnassignCurator clears a student's curator
// @Summary Unassign the curator
// @Description Clears the student's curator assignment
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Success 200 {object} dto.APIResponse "Curator unassigned"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId}/curator [delete]
func (c *StudentController) UnassignCurator(ctx *gin.Context) {
	if err := c.lifecycleService.UnassignCurator(ctx, ctx.Param("telegramId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"assigned": false}))
}

// SignReferral marks a student's referral letter signed
// @Summary Sign the referral letter
// @Description Marks the referral letter signed and notifies the student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Success 200 {object} dto.APIResponse "Referral signed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId}/sign-referral [post]
func (c *StudentController) SignReferral(ctx *gin.Context) {
	if err := c.lifecycleService.SignReferral(ctx, ctx.Param("telegramId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"signed": true}))
}

// SignReport marks a student's report signed
// @Summary Sign the report
// @Description Marks the internship report signed and notifies the student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Success 200 {object} dto.APIResponse "Report signed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId}/sign-report [post]
func (c *StudentController) SignReport(ctx *gin.Context) {
	if err := c.lifecycleService.SignReport(ctx, ctx.Param("telegramId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"signed": true}))
}

// UpdateStudent applies a full-attribute edit to a student record
// @Summary Update a student
// @Description Replaces all editable attributes of the student record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Param request body dto.UpdateStudentRequest true "Updated attributes"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.lifecycleService.UpdateStudent(ctx, ctx.Param("telegramId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Removes the student record and notifies the student of the rejection
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Student Telegram ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{telegramId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.lifecycleService.DeleteStudent(ctx, ctx.Param("telegramId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
