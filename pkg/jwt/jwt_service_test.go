package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodgram/domain"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/cache/mock"

	"go.uber.org/mock/gomock"
)

func TestGenerateAndParseToken(t *testing.T) {
	s := newJWTService("secret", "TEST", time.Hour, cache.NewNoopCache())

	token, err := s.GenerateTokenUser(42, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateTokenUser() error = %v", err)
	}

	id, role, err := s.GetUserIDByToken(context.Background(), token)
	if err != nil {
		t.Fatalf("GetUserIDByToken() error = %v", err)
	}
	if id != 42 || role != domain.RoleAdmin {
		t.Errorf("GetUserIDByToken() = %d, %q, want 42, %q", id, role, domain.RoleAdmin)
	}
}

func TestGetUserIDByTokenErrors(t *testing.T) {
	s := newJWTService("secret", "TEST", time.Hour, cache.NewNoopCache())
	expired := newJWTService("secret", "TEST", -time.Minute, cache.NewNoopCache())
	other := newJWTService("other-secret", "TEST", time.Hour, cache.NewNoopCache())

	expiredToken, _ := expired.GenerateTokenUser(1, domain.RoleUser)
	foreignToken, _ := other.GenerateTokenUser(1, domain.RoleUser)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: domain.ErrTokenInvalid},
		{name: "expired", token: expiredToken, wantErr: domain.ErrTokenExpired},
		{name: "wrong secret", token: foreignToken, wantErr: domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.GetUserIDByToken(context.Background(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetUserIDByToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRevokeToken(t *testing.T) {
	store := mock.NewMockCache(gomock.NewController(t))
	s := newJWTService("secret", "TEST", time.Hour, store)

	token, err := s.GenerateTokenUser(7, domain.RoleUser)
	if err != nil {
		t.Fatalf("GenerateTokenUser() error = %v", err)
	}

	var revokedKey string
	store.EXPECT().
		Set(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any, ttl time.Duration) error {
			revokedKey = key
			if ttl <= 0 || ttl > time.Hour {
				t.Errorf("unexpected ttl %v", ttl)
			}
			return nil
		})

	if err := s.RevokeToken(context.Background(), token); err != nil {
		t.Fatalf("RevokeToken() error = %v", err)
	}

	store.EXPECT().
		Exists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (bool, error) {
			return key == revokedKey, nil
		})

	_, _, err = s.GetUserIDByToken(context.Background(), token)
	if !errors.Is(err, domain.ErrTokenRevoked) {
		t.Errorf("GetUserIDByToken() error = %v, want %v", err, domain.ErrTokenRevoked)
	}
}

func TestGetUserIDByTokenDenylistDown(t *testing.T) {
	store := mock.NewMockCache(gomock.NewController(t))
	s := newJWTService("secret", "TEST", time.Hour, store)
	token, _ := s.GenerateTokenUser(3, domain.RoleUser)

	store.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

	id, _, err := s.GetUserIDByToken(context.Background(), token)
	if err != nil || id != 3 {
		t.Errorf("GetUserIDByToken() = %d, %v, want 3, nil", id, err)
	}
}
