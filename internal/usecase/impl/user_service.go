package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	crud[entity.User]
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		crud:         newCrud[entity.User](params.UserRepo, "user"),
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the profile, rejects a taken email and stores the user
// with a bcrypt hash of the password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	var hash string
	if input.Password != "" {
		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		hash = hashed
	}

	user, err := entity.NewUser(entity.UserParams{
		Avatar:       input.Avatar,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		BirthDate:    input.BirthDate,
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
	}, now())
	if err != nil {
		return nil, err
	}

	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrRecordNotFound):
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	registered, err := srv.save(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

// Login checks the credentials and issues a token pair. An unknown email and
// a wrong password fail the same way.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *userService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.get(ctx, userID)
}

func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	return srv.update(ctx, userID, func(u entity.User, at time.Time) (entity.User, error) {
		next := u.Apply(patch, at)

		return next, next.Validate()
	})
}
