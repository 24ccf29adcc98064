package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/app/services"
	"github.com/iac-center/praktika-backend/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// LoginWithTelegram exchanges a Telegram Login Widget payload for a token
// @Summary Log in with Telegram
// @Description Verifies the Telegram Login Widget signature and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TelegramLoginRequest true "Telegram login payload"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Signature verification failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/telegram [post]
func (c *AuthController) LoginWithTelegram(ctx *gin.Context) {
	var req dto.TelegramLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.authService.LoginWithTelegram(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(token))
}
