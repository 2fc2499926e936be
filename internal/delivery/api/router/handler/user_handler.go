package handler

import (
	"log/slog"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8,max=72"`
	Avatar      string     `json:"avatar"`
	PhoneNumber string     `json:"phone_number"`
	BirthDate   *time.Time `json:"birth_date"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

type profileRequest struct {
	Avatar      *string    `json:"avatar"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	BirthDate   *time.Time `json:"birth_date"`
	PhoneNumber *string    `json:"phone_number"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Avatar:      req.Avatar,
		PhoneNumber: req.PhoneNumber,
		BirthDate:   req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, user)
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	})
}

// GetProfile returns the authenticated caller.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, found := middleware.GetUserID(c)
	if !found {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, user)
}

// UpdateProfile applies a partial update to the authenticated caller.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, found := middleware.GetUserID(c)
	if !found {
		return domainerrors.ErrUnauthorized
	}

	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, entity.UserPatch{
		Avatar:      req.Avatar,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   req.BirthDate,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, user)
}
