package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/repositories"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
	"github.com/SandMart23/Aplikasi-Bawang/pkg/utils"
)

func newTestAuthService(t *testing.T) (AuthService, repositories.SessionRepository) {
	t.Helper()
	utils.InitJWT("test-secret-key-for-unit-tests-only")
	sessionRepo := repositories.NewSessionRepository(storage.NewMemoryStore())
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(sessionRepo, "admin", hash), sessionRepo
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("LoginIssuesTokenAndPersistsSessionFlags", func(t *testing.T) {
		svc, sessionRepo := newTestAuthService(t)

		resp, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "rahasia123"})
		require.NoError(t, err)
		require.Equal(t, "admin", resp.Username)
		require.NotEmpty(t, resp.AccessToken)

		claims, err := utils.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Username)

		loggedIn, username, err := sessionRepo.Current(ctx)
		require.NoError(t, err)
		require.True(t, loggedIn)
		require.Equal(t, "admin", username)
	})

	t.Run("WrongPasswordOrUsernameRejected", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "salah"})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, LoginRequest{Username: "operator", Password: "rahasia123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("LogoutClearsSessionFlags", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "rahasia123"})
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx))

		session, err := svc.CurrentSession(ctx)
		require.NoError(t, err)
		require.False(t, session.LoggedIn)
	})
}
