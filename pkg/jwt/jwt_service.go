package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram/domain"
	"foodgram/internal/utils"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

//go:generate mockgen -source=jwt_service.go -destination=mock/jwt_service.go -package=mock

const revokedKeyPrefix = "jwt:revoked:"

type (
	JWTService interface {
		GenerateTokenUser(userID int64, role string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(ctx context.Context, token string) (int64, string, error)
		RevokeToken(ctx context.Context, token string) error
	}

	jwtUserClaim struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		revoked   cache.Cache
	}
)

func NewJWTService(revoked cache.Cache) JWTService {
	ttl := time.Duration(utils.GetConfigInt("TOKEN_TTL_MINUTES", 1440)) * time.Minute
	return newJWTService(utils.GetConfig("JWT_SECRET"), "FOODGRAM", ttl, revoked)
}

func newJWTService(secretKey, issuer string, ttl time.Duration, revoked cache.Cache) *jwtService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		ttl:       ttl,
		revoked:   revoked,
	}
}

func (j *jwtService) GenerateTokenUser(userID int64, role string) (string, error) {
	now := time.Now()
	claims := jwtUserClaim{
		userID,
		role,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) claims(token string) (*jwtUserClaim, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || claims.UserID == 0 {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) GetUserIDByToken(ctx context.Context, token string) (int64, string, error) {
	claims, err := j.claims(token)
	if err != nil {
		return 0, "", err
	}

	if claims.ID != "" {
		revoked, err := j.revoked.Exists(ctx, revokedKeyPrefix+claims.ID)
		if err != nil {
			// the denylist is unavailable; the signature and expiry already passed
			logger.Warn().Err(err).Msg("token denylist lookup failed")
		} else if revoked {
			return 0, "", domain.ErrTokenRevoked
		}
	}

	return claims.UserID, claims.Role, nil
}

// RevokeToken keeps the token id on the denylist until the token would have
// expired anyway.
func (j *jwtService) RevokeToken(ctx context.Context, token string) error {
	claims, err := j.claims(token)
	if err != nil {
		return err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return domain.ErrTokenInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return j.revoked.Set(ctx, revokedKeyPrefix+claims.ID, true, ttl)
}
