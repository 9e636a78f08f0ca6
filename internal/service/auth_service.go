package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/mailer"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/deeplink"
	"ai-stylist-be/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// CurrentSession returns the active session, nil when signed out.
	CurrentSession() *dto.SessionResponse
	ExchangeDeepLink(ctx context.Context, link string) (*dto.SessionResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	sessionStore   *session.Store
	jwtSecret      string
	deepLinkScheme string
	accessTTL      time.Duration
	refreshTTL     time.Duration
	onLogout       func(userId uuid.UUID)
}

// NewAuthService wires authentication. onLogout runs after a successful
// sign-out so per-user in-memory state (chat session, cached
// recommendations) can be dropped; nil is allowed.
func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sessionStore *session.Store,
	jwtSecret string,
	deepLinkScheme string,
	accessTTL, refreshTTL time.Duration,
	onLogout func(userId uuid.UUID),
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		sessionStore:   sessionStore,
		jwtSecret:      jwtSecret,
		deepLinkScheme: deepLinkScheme,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
		onLogout:       onLogout,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func hashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *authService) signAccessToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		PasswordHash:  &hashStr,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// Transaction covers user + token creation
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     otpCode,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Email delivery must not block registration
	go func() {
		if emailErr := s.emailService.SendOTP(user.Email, otpCode); emailErr != nil {
			fmt.Printf("Error sending registration email: %v\n", emailErr)
		}
	}()

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	if user.EmailVerified {
		return nil
	}

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.ByToken{Token: req.Token},
	)
	if err != nil || tokenEntity == nil {
		return errors.New("invalid otp code")
	}

	if time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("otp code expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().MarkEmailVerified(ctx, user.Id); err != nil {
		return err
	}

	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("user registered via OAuth")
	}

	if !user.EmailVerified {
		return nil, errors.New("email not verified. please check your inbox for the otp code")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return s.issueSession(ctx, uow, user)
}

func (s *authService) issueSession(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.LoginResponse, error) {
	signedToken, err := s.signAccessToken(user.Id)
	if err != nil {
		return nil, err
	}

	rawRefreshToken := uuid.New().String()

	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(s.refreshTTL),
		Revoked:   false,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	// Session changes are delivered to subscribers before the response
	// is returned, so navigation state is current by the next request.
	s.sessionStore.Set(&session.Session{
		UserID:       user.Id,
		Email:        user.Email,
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
	})

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{Hash: hashToken(req.RefreshToken)},
	)
	if err != nil || tokenEntity == nil {
		return nil, errors.New("invalid refresh token")
	}
	if tokenEntity.Revoked || time.Now().After(tokenEntity.ExpiresAt) {
		return nil, errors.New("refresh token expired or revoked")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tokenEntity.UserId})
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	// Rotate: the presented token is revoked, a new one replaces it.
	if err := uow.UserRepository().RevokeRefreshToken(ctx, tokenEntity.TokenHash); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, uow, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken)); err != nil {
			return err
		}
	}

	current := s.sessionStore.Current()
	s.sessionStore.Clear()

	if current != nil && s.onLogout != nil {
		s.onLogout(current.UserID)
	}
	return nil
}

func (s *authService) CurrentSession() *dto.SessionResponse {
	current := s.sessionStore.Current()
	if current == nil {
		return nil
	}
	return &dto.SessionResponse{
		UserId:       current.UserID,
		Email:        current.Email,
		AccessToken:  current.AccessToken,
		RefreshToken: current.RefreshToken,
	}
}

// ExchangeDeepLink accepts the OAuth callback link the provider redirected
// to and installs the carried token pair as the current session.
func (s *authService) ExchangeDeepLink(ctx context.Context, link string) (*dto.SessionResponse, error) {
	tokens, err := deeplink.Parse(s.deepLinkScheme, link)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokens.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid access token in deep link")
	}

	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, errors.New("invalid access token in deep link")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	s.sessionStore.Set(&session.Session{
		UserID:       user.Id,
		Email:        user.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})

	return &dto.SessionResponse{
		UserId:       user.Id,
		Email:        user.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}
