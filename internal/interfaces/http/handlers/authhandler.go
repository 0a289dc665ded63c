package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/user/dto"
	"github.com/estately/estately/internal/application/user/usecases"
	storeDTO "github.com/estately/estately/internal/application/store/dto"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase      registerUseCase
	verifyEmailUseCase   verifyEmailUseCase
	resendUseCase        resendVerificationUseCase
	loginUseCase         loginUseCase
	refreshTokenUseCase  refreshTokenUseCase
	requestResetUseCase  requestPasswordResetUseCase
	resetPasswordUseCase resetPasswordUseCase
	changePasswordUC     changePasswordUseCase
	getUserUseCase       getUserUseCase
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	verifyEmailUC verifyEmailUseCase,
	resendUC resendVerificationUseCase,
	loginUC loginUseCase,
	refreshTokenUC refreshTokenUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	changePasswordUC changePasswordUseCase,
	getUserUC getUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:      registerUC,
		verifyEmailUseCase:   verifyEmailUC,
		resendUseCase:        resendUC,
		loginUseCase:         loginUC,
		refreshTokenUseCase:  refreshTokenUC,
		requestResetUseCase:  requestResetUC,
		resetPasswordUseCase: resetPasswordUC,
		changePasswordUC:     changePasswordUC,
		getUserUseCase:       getUserUC,
		logger:               logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Jane Doe"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type RegisterResponse struct {
	User  *dto.UserDTO       `json:"user"`
	Store *storeDTO.StoreDTO `json:"store"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

func tokensDTO(pair *usecases.TokenPair) *dto.AuthTokensDTO {
	return &dto.AuthTokensDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}

// @Summary		Register
// @Description	Create an account together with its store
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		RegisterRequest								true	"Account data"
// @Success		201		{object}	utils.APIResponse{data=RegisterResponse}
// @Failure		400		{object}	utils.APIResponse
// @Failure		409		{object}	utils.APIResponse
// @Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegisterResponse{
		User:  dto.ToUserDTO(result.User),
		Store: storeDTO.ToStoreDTO(result.Store),
	}, "registration successful, please verify your email")
}

// @Summary		Verify email
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		TokenRequest	true	"Verification token"
// @Success		200		{object}	utils.APIResponse{data=dto.UserDTO}
// @Failure		400		{object}	utils.APIResponse
// @Router			/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.verifyEmailUseCase.Execute(c.Request.Context(), req.Token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "email verified", dto.ToUserDTO(u))
}

// @Summary		Resend verification email
// @Tags			auth
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse
// @Router			/auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	if err := h.resendUseCase.Execute(c.Request.Context(), currentUserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "verification email sent", nil)
}

// @Summary		Login
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		LoginRequest	true	"Credentials"
// @Success		200		{object}	utils.APIResponse{data=dto.AuthTokensDTO}
// @Failure		401		{object}	utils.APIResponse
// @Failure		403		{object}	utils.APIResponse
// @Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tokens := tokensDTO(result.Tokens)
	tokens.User = dto.ToUserDTO(result.User)
	utils.SuccessResponse(c, http.StatusOK, "login successful", tokens)
}

// @Summary		Refresh tokens
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		RefreshTokenRequest	true	"Refresh token"
// @Success		200		{object}	utils.APIResponse{data=dto.AuthTokensDTO}
// @Failure		401		{object}	utils.APIResponse
// @Router			/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.refreshTokenUseCase.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", tokensDTO(pair))
}

// @Summary		Request a password reset
// @Description	Always succeeds so addresses cannot be enumerated
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		ForgotPasswordRequest	true	"Email"
// @Success		200		{object}	utils.APIResponse
// @Router			/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.requestResetUseCase.Execute(c.Request.Context(), req.Email); err != nil {
		h.logger.Errorw("password reset request failed", "error", err)
	}
	utils.SuccessResponse(c, http.StatusOK, "if the address exists, a reset link has been sent", nil)
}

// @Summary		Reset password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		ResetPasswordRequest	true	"Token and new password"
// @Success		200		{object}	utils.APIResponse
// @Failure		400		{object}	utils.APIResponse
// @Router			/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "password has been reset", nil)
}

// @Summary		Change password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		ChangePasswordRequest	true	"Old and new password"
// @Success		200		{object}	utils.APIResponse
// @Failure		401		{object}	utils.APIResponse
// @Router			/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      currentUserID(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

// @Summary		Current user
// @Tags			users
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.UserDTO}
// @Router			/users/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	u, err := h.getUserUseCase.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserDTO(u))
}
