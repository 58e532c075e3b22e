package handler

import (
	"log/slog"
	"net/http"
	"time"

	"booknow/internal/delivery/api/response"
	"booknow/internal/domain/entity"
	"booknow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// AuthHandler serves registration, login and referral code lookup.
type AuthHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:     params.RegistrationUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the sign-up body. Business accounts must name the business.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email,max=254"`
	Password     string `json:"password" validate:"required,max=72"`
	FullName     string `json:"full_name" validate:"max=120"`
	UserType     string `json:"user_type" validate:"required,oneof=customer business"`
	ReferralCode string `json:"referral_code" validate:"max=32"`
	BusinessName string `json:"business_name" validate:"required_if=UserType business,max=120"`
	Category     string `json:"category" validate:"max=60"`
	City         string `json:"city" validate:"max=60"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the account and its access token.
type AuthResponse struct {
	User            *entity.User `json:"user"`
	AccessToken     string       `json:"access_token"`
	ExpiresAt       time.Time    `json:"expires_at"`
	ReferralApplied bool         `json:"referral_applied"`
}

// ReferralCodeResponse describes a code before sign-up.
type ReferralCodeResponse struct {
	Code         string          `json:"code"`
	Valid        bool            `json:"valid"`
	ReferrerName string          `json:"referrer_name,omitempty"`
	ReferrerType entity.UserType `json:"referrer_type,omitempty"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:            out.User,
		AccessToken:     out.AccessToken,
		ExpiresAt:       out.ExpiresAt,
		ReferralApplied: out.ReferralApplied,
	}
}

// Register handles account creation. An unknown referral code never fails the request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		UserType:     entity.UserType(req.UserType),
		ReferralCode: req.ReferralCode,
	}
	if input.UserType == entity.UserTypeBusiness {
		input.Business = &entity.BusinessProfile{
			BusinessName: req.BusinessName,
			Category:     req.Category,
			City:         req.City,
		}
	}

	out, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(out))
}

// Login handles credential login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// ValidateReferralCode reports whether a code resolves to a referrer.
func (h *AuthHandler) ValidateReferralCode(c echo.Context) error {
	info, err := h.uc.ValidateReferralCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ReferralCodeResponse{
		Code:         info.Code,
		Valid:        info.Valid,
		ReferrerName: info.ReferrerName,
		ReferrerType: info.ReferrerType,
	})
}

// GetProfile returns the caller's account.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
