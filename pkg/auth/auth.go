package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/pkg/model"
	"droscher.com/WhiskyReview/pkg/repository"
)

var (
	ErrMissingToken  = errors.New("authorization header not found")
	ErrMalformedAuth = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken  = errors.New("invalid token")
	ErrNoSecretKey   = errors.New("no signing secret configured")
)

type UserKey struct{}

// UserFromContext returns the admin user the interceptor attached to ctx.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, found := ctx.Value(UserKey{}).(*model.User)

	return user, found && user != nil
}

type Manager struct {
	conf   configs.Auth
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, users repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// AdminInterceptor only lets through requests carrying an HMAC signed bearer
// token whose email claim belongs to a known user.
func (a *Manager) AdminInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			user, err := a.authenticate(ctx, req.Header())
			if err != nil {
				return nil, err
			}

			a.logger.Debug("admin request", zap.String("procedure", req.Spec().Procedure), zap.String("user", user.Email))

			return next(context.WithValue(ctx, UserKey{}, user), req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
		}

		if a.conf.SecretKey == "" {
			return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoSecretKey)
		}

		return []byte(a.conf.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	if a.conf.Audience != "" && !claims.VerifyAudience(a.conf.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("aud", claims["aud"]))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	if a.conf.Domain != "" && !claims.VerifyIssuer("https://"+a.conf.Domain+"/", true) {
		a.logger.Error("token issuer mismatch", zap.Any("iss", claims["iss"]))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	email, found := claims["email"].(string)
	if !found || email == "" {
		a.logger.Error("unable to get email from token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	user, err := a.users.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			a.logger.Warn("token for unknown user", zap.String("email", email))

			return nil, connect.NewError(connect.CodePermissionDenied, err)
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, errors.New("error authenticating user"))
	}

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return "", connect.NewError(connect.CodeUnauthenticated, ErrMissingToken)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found || token == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, ErrMalformedAuth)
	}

	return token, nil
}
