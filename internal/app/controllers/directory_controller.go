package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/app/services"
	"github.com/iac-center/praktika-backend/internal/middleware"
)

// DirectoryController handles curator, facility and apprenticeship type
// directory operations
type DirectoryController struct {
	directoryService services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// CreateCurator adds a curator to the directory
// @Summary Create a curator
// @Description Registers a curator with a unique Telegram identity and full name
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCuratorRequest true "Curator information"
// @Success 201 {object} dto.APIResponse{data=models.Curator} "Curator created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Curator already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /curators [post]
func (c *DirectoryController) CreateCurator(ctx *gin.Context) {
	var req dto.CreateCuratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid curator data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	curator, err := c.directoryService.CreateCurator(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(curator))
}

// ListCurators retrieves all curators
// @Summary List curators
// @Description Retrieves all curators in the directory
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Curator} "Curators"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /curators [get]
func (c *DirectoryController) ListCurators(ctx *gin.Context) {
	curators, err := c.directoryService.ListCurators(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(curators))
}

// DeleteCurator removes a curator by Telegram identity
// @Summary Delete a curator
// @Description Removes the curator; assigned students keep the curator name
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param telegramId path string true "Curator Telegram ID"
// @Success 200 {object} dto.APIResponse "Curator deleted"
// @Failure 404 {object} dto.ErrorResponse "Curator not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /curators/{telegramId} [delete]
func (c *DirectoryController) DeleteCurator(ctx *gin.Context) {
	if err := c.directoryService.DeleteCurator(ctx, ctx.Param("telegramId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}

// CreateFacility adds an education facility to the directory
// @Summary Create an education facility
// @Description Adds an education facility with a unique name
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNamedEntryRequest true "Facility name"
// @Success 201 {object} dto.APIResponse{data=models.EducationFacility} "Facility created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Facility already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /facilities [post]
func (c *DirectoryController) CreateFacility(ctx *gin.Context) {
	var req dto.CreateNamedEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid facility data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	facility, err := c.directoryService.CreateFacility(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(facility))
}

// ListFacilities retrieves all education facilities
// @Summary List education facilities
// @Description Retrieves all education facilities, publicly readable
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.EducationFacility} "Facilities"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /facilities [get]
func (c *DirectoryController) ListFacilities(ctx *gin.Context) {
	facilities, err := c.directoryService.ListFacilities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(facilities))
}

// DeleteFacility removes an education facility by name
// @Summary Delete an education facility
// @Description Removes the facility; student records keep the stored name
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param name path string true "Facility name"
// @Success 200 {object} dto.APIResponse "Facility deleted"
// @Failure 404 {object} dto.ErrorResponse "Facility not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /facilities/{name} [delete]
func (c *DirectoryController) DeleteFacility(ctx *gin.Context) {
	if err := c.directoryService.DeleteFacility(ctx, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}

// CreateApprenticeshipType adds an apprenticeship type to the directory
// @Summary Create an apprenticeship type
// @Description Adds an apprenticeship type with a unique name
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNamedEntryRequest true "Apprenticeship type name"
// @Success 201 {object} dto.APIResponse{data=models.ApprenticeshipType} "Apprenticeship type created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Apprenticeship type already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apprenticeship-types [post]
func (c *DirectoryController) CreateApprenticeshipType(ctx *gin.Context) {
	var req dto.CreateNamedEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid apprenticeship type data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	at, err := c.directoryService.CreateApprenticeshipType(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(at))
}

// ListApprenticeshipTypes retrieves all apprenticeship types
// @Summary List apprenticeship types
// @Description Retrieves all apprenticeship types, publicly readable
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ApprenticeshipType} "Apprenticeship types"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apprenticeship-types [get]
func (c *DirectoryController) ListApprenticeshipTypes(ctx *gin.Context) {
	types, err := c.directoryService.ListApprenticeshipTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(types))
}

// DeleteApprenticeshipType removes an apprenticeship type by name
// @Summary Delete an apprenticeship type
// @Description Removes the apprenticeship type; student records keep the stored name
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param name path string true "Apprenticeship type name"
// @Success 200 {object} dto.APIResponse "Apprenticeship type deleted"
// @Failure 404 {object} dto.ErrorResponse "Apprenticeship type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apprenticeship-types/{name} [delete]
func (c *DirectoryController) DeleteApprenticeshipType(ctx *gin.Context) {
	if err := c.directoryService.DeleteApprenticeshipType(ctx, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
