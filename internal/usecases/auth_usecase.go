package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/domain/repositories"
	"aeronest.backend/internal/infrastructure/security"
	"aeronest.backend/pkg/crypto"
	"aeronest.backend/pkg/jwt"
	"aeronest.backend/pkg/logger"
	"aeronest.backend/pkg/utils"
	"go.uber.org/zap"
)

// AuthUsecase handles registration and login business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	referralRepo repositories.ReferralRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	throttle     security.ThrottleStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	referralRepo repositories.ReferralRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	throttle security.ThrottleStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		uow:          uow,
		jwtService:   jwtService,
		throttle:     throttle,
	}
}

// Register creates a user. Registration requires a valid referral code;
// the user row, the redemption row and the legacy first-redeemer pointer
// are written in one transaction, so a crash can never leave a redeemed
// code without its user or vice versa.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	code, ok := entities.NormalizeReferralCode(input.ReferralCode)
	if !ok {
		return nil, domainerrors.BadRequest("Неверный формат реферального кода")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("Пользователь с таким email уже существует")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Name:         null.NewString(input.Name, input.Name != ""),
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		Balance:      decimal.Zero,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		referral, err := u.referralRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Реферальный код не найден")
			}
			return err
		}

		ownerID := referral.UserID
		user.ReferrerID = &ownerID

		if err := u.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("Пользователь с таким email уже существует")
			}
			return err
		}

		if err := u.referralRepo.InsertUseIfBelowCap(ctx, referral, user.ID); err != nil {
			if errors.Is(err, domainerrors.ErrReferralLimitReached) {
				return domainerrors.LimitExceeded("Лимит использования реферального кода исчерпан")
			}
			return err
		}

		return u.referralRepo.MarkFirstRedeemer(ctx, referral.ID, user.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("referral_code", code),
	)

	return u.issueTokens(user)
}

// Login authenticates a user. Failed attempts are throttled per client
// IP; a blocked IP is rejected before the password is even checked.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput, clientIP string) (*entities.AuthResponse, error) {
	allowed, retryAfter, err := u.throttle.Allow(ctx, clientIP)
	if err != nil {
		logger.Warn(ctx, "throttle check failed", zap.Error(err))
	} else if !allowed {
		logger.Warn(ctx, "login blocked by throttle",
			zap.String("client_ip", clientIP),
			zap.Duration("retry_after", retryAfter),
		)
		return nil, domainerrors.TooManyAttempts("Слишком много попыток входа, попробуйте позже")
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, u.failLogin(ctx, clientIP)
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, u.failLogin(ctx, clientIP)
	}

	if err := u.throttle.Reset(ctx, clientIP); err != nil {
		logger.Warn(ctx, "throttle reset failed", zap.Error(err))
	}

	return u.issueTokens(user)
}

// Me returns the current user by id
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (u *AuthUsecase) Refresh(_ context.Context, refreshToken string) (*jwt.TokenPair, error) {
	pair, err := u.jwtService.Refresh(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("Недействительный refresh токен")
	}
	return pair, nil
}

func (u *AuthUsecase) failLogin(ctx context.Context, clientIP string) error {
	if err := u.throttle.RecordFailure(ctx, clientIP); err != nil {
		logger.Warn(ctx, "throttle record failed", zap.Error(err))
	}
	return domainerrors.ErrInvalidCredentials
}

func (u *AuthUsecase) issueTokens(user *entities.User) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
