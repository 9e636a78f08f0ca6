package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/pkg/deeplink"
	"ai-stylist-be/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmailService) SendOTP(toEmail, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	return nil
}

func (f *fakeEmailService) SendResetToken(toEmail, token string) error { return nil }

func newAuthFixture(onLogout func(uuid.UUID)) (*fakeRepositoryFactory, *session.Store, IAuthService) {
	factory := newFakeFactory()
	sessionStore := session.NewStore()
	svc := NewAuthService(factory, &fakeEmailService{}, sessionStore,
		"test-secret", deeplink.DefaultScheme, time.Hour, 24*time.Hour, onLogout)
	return factory, sessionStore, svc
}

// registerAndVerify walks the email flow using the OTP stored by the fake.
func registerAndVerify(t *testing.T, factory *fakeRepositoryFactory, svc IAuthService, email, password string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Email: email, Password: password})
	require.NoError(t, err)

	var otp string
	for _, tok := range factory.uow.userRepo.otpTokens {
		if tok.UserId == resp.Id {
			otp = tok.Token
		}
	}
	require.NotEmpty(t, otp)
	require.NoError(t, svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: email, Token: otp}))
	return resp.Id
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, _, svc := newAuthFixture(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "dup@example.com", Password: "secret123"})
	assert.Error(t, err)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	_, _, svc := newAuthFixture(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "new@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "secret123"})
	assert.Error(t, err)
}

func TestVerifyEmailRejectsWrongOTP(t *testing.T) {
	_, _, svc := newAuthFixture(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "otp@example.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "otp@example.com", Token: "000000"})
	assert.Error(t, err)
}

func TestLoginIssuesSessionAndPublishesIt(t *testing.T) {
	factory, sessionStore, svc := newAuthFixture(nil)
	ctx := context.Background()

	userId := registerAndVerify(t, factory, svc, "kai@example.com", "secret123")

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "kai@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, userId, resp.User.Id)

	current := sessionStore.Current()
	require.NotNil(t, current)
	assert.Equal(t, userId, current.UserID)
	assert.Equal(t, resp.AccessToken, current.AccessToken)

	sess := svc.CurrentSession()
	require.NotNil(t, sess)
	assert.Equal(t, userId, sess.UserId)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "kai@example.com", Password: "wrong"})
	assert.Error(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	factory, _, svc := newAuthFixture(nil)
	ctx := context.Background()

	registerAndVerify(t, factory, svc, "rot@example.com", "secret123")
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "rot@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token is single use.
	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Error(t, err)

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	assert.NoError(t, err)
}

func TestLogoutClearsSessionAndRunsCallback(t *testing.T) {
	var loggedOut []uuid.UUID
	factory, sessionStore, svc := newAuthFixture(func(id uuid.UUID) {
		loggedOut = append(loggedOut, id)
	})
	ctx := context.Background()

	userId := registerAndVerify(t, factory, svc, "out@example.com", "secret123")
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "out@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	assert.Nil(t, sessionStore.Current())
	assert.Nil(t, svc.CurrentSession())
	assert.Equal(t, []uuid.UUID{userId}, loggedOut)

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Error(t, err)
}

func TestExchangeDeepLinkInstallsSession(t *testing.T) {
	factory, sessionStore, svc := newAuthFixture(nil)
	ctx := context.Background()

	userId := registerAndVerify(t, factory, svc, "link@example.com", "secret123")
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "link@example.com", Password: "secret123"})
	require.NoError(t, err)

	sessionStore.Clear()

	link := deeplink.Build("", login.AccessToken, login.RefreshToken)
	resp, err := svc.ExchangeDeepLink(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, userId, resp.UserId)

	current := sessionStore.Current()
	require.NotNil(t, current)
	assert.Equal(t, userId, current.UserID)
	assert.Equal(t, "link@example.com", current.Email)
}

func TestExchangeDeepLinkRejectsForgedToken(t *testing.T) {
	_, sessionStore, svc := newAuthFixture(nil)

	link := deeplink.Build("", "not-a-jwt", "refresh")
	_, err := svc.ExchangeDeepLink(context.Background(), link)
	assert.Error(t, err)
	assert.Nil(t, sessionStore.Current())
}

func TestExchangeDeepLinkHonorsConfiguredScheme(t *testing.T) {
	factory := newFakeFactory()
	sessionStore := session.NewStore()
	svc := NewAuthService(factory, &fakeEmailService{}, sessionStore,
		"test-secret", "app.custom", time.Hour, 24*time.Hour, nil)
	ctx := context.Background()

	userId := registerAndVerify(t, factory, svc, "scheme@example.com", "secret123")
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "scheme@example.com", Password: "secret123"})
	require.NoError(t, err)
	sessionStore.Clear()

	// A link built for the default scheme is not accepted.
	_, err = svc.ExchangeDeepLink(ctx, deeplink.Build("", login.AccessToken, login.RefreshToken))
	assert.Error(t, err)

	resp, err := svc.ExchangeDeepLink(ctx, deeplink.Build("app.custom", login.AccessToken, login.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, userId, resp.UserId)
}
