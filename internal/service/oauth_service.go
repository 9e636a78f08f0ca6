package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/deeplink"
	"ai-stylist-be/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	// HandleCallback exchanges the provider code, upserts the user and
	// returns the app deep link carrying the issued token pair.
	HandleCallback(ctx context.Context, provider string, code string) (string, error)
}

type oauthService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionStore   *session.Store
	googleConf     *oauth2.Config
	jwtSecret      string
	deepLinkScheme string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

func NewOAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessionStore *session.Store,
	clientID, clientSecret, redirectURL string,
	jwtSecret string,
	deepLinkScheme string,
	accessTTL, refreshTTL time.Duration,
) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:     uowFactory,
		sessionStore:   sessionStore,
		googleConf:     conf,
		jwtSecret:      jwtSecret,
		deepLinkScheme: deepLinkScheme,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("code exchange failed: %v", err)
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed reading response: %v", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return "", err
	}

	if user == nil {
		now := time.Now()
		user = &entity.User{
			Id:              uuid.New(),
			Email:           googleUser.Email,
			PasswordHash:    nil,
			EmailVerified:   true,
			EmailVerifiedAt: &now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := uow.Begin(ctx); err != nil {
			return "", err
		}

		if err := uow.UserRepository().Create(ctx, user); err != nil {
			uow.Rollback()
			return "", err
		}

		if err := uow.Commit(); err != nil {
			return "", err
		}
	}

	userProvider := &entity.UserProvider{
		Id:             uuid.New(),
		UserId:         user.Id,
		ProviderName:   "google",
		ProviderUserId: googleUser.ID,
		CreatedAt:      time.Now(),
	}
	if err := uow.UserRepository().SaveUserProvider(ctx, userProvider); err != nil {
		return "", fmt.Errorf("failed to save provider info: %v", err)
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := jwtToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	rawRefreshToken := uuid.New().String()
	hasher := sha256.New()
	hasher.Write([]byte(rawRefreshToken))

	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hex.EncodeToString(hasher.Sum(nil)),
		ExpiresAt: time.Now().Add(s.refreshTTL),
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return "", err
	}

	s.sessionStore.Set(&session.Session{
		UserID:       user.Id,
		Email:        user.Email,
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
	})

	// The app re-enters through the deep link; tokens ride the fragment.
	return deeplink.Build(s.deepLinkScheme, signedToken, rawRefreshToken), nil
}
