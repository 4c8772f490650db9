package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/mocks"
	"droscher.com/WhiskyReview/pkg/auth"
	"droscher.com/WhiskyReview/pkg/model"
	"droscher.com/WhiskyReview/pkg/repository"
)

const secretKey = "dram-secret"

type AuthTestSuite struct {
	suite.Suite
	users       *mocks.UserRepository
	interceptor connect.UnaryInterceptorFunc
	seenUser    *model.User
	next        connect.UnaryFunc
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.users = mocks.NewUserRepository(suite.T())
	manager := auth.NewAuthManager(configs.Auth{SecretKey: secretKey, Audience: "whisky-admin"}, suite.users, zaptest.NewLogger(suite.T()))
	suite.interceptor = manager.AdminInterceptor()
	suite.seenUser = nil
	suite.next = func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		suite.seenUser, _ = auth.UserFromContext(ctx)

		return connect.NewResponse(&struct{}{}), nil
	}
}

func (suite *AuthTestSuite) signedToken(method jwt.SigningMethod, key string, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) call(authorization string) error {
	request := connect.NewRequest(&struct{}{})
	if authorization != "" {
		request.Header().Set("Authorization", authorization)
	}

	_, err := suite.interceptor(suite.next)(context.Background(), request)

	return err
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"email": "curator@example.com",
		"aud":   "whisky-admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func (suite *AuthTestSuite) TestValidToken() {
	user := &model.User{Username: "curator", Email: "curator@example.com"}
	suite.users.EXPECT().GetUserFromEmail(context.Background(), "curator@example.com").Return(user, nil)

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, validClaims()))

	suite.Require().NoError(err)
	suite.Equal(user, suite.seenUser)
}

func (suite *AuthTestSuite) TestLowercaseBearer() {
	suite.users.EXPECT().GetUserFromEmail(context.Background(), "curator@example.com").Return(&model.User{Email: "curator@example.com"}, nil)

	err := suite.call("bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, validClaims()))

	suite.Require().NoError(err)
	suite.NotNil(suite.seenUser)
}

func (suite *AuthTestSuite) TestMissingHeader() {
	err := suite.call("")

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.ErrorIs(err, auth.ErrMissingToken)
	suite.Nil(suite.seenUser)
}

func (suite *AuthTestSuite) TestMalformedHeader() {
	err := suite.call("Token abc")

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.ErrorIs(err, auth.ErrMalformedAuth)
}

func (suite *AuthTestSuite) TestWrongSecret() {
	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, "other-secret", validClaims()))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestExpiredToken() {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, claims))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrongAudience() {
	claims := validClaims()
	claims["aud"] = "someone-else"

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, claims))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestMissingEmail() {
	claims := validClaims()
	delete(claims, "email")

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, claims))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestUnknownUser() {
	suite.users.EXPECT().GetUserFromEmail(context.Background(), "curator@example.com").Return(nil, repository.ErrUserNotFound)

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, validClaims()))

	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
	suite.Nil(suite.seenUser)
}

func (suite *AuthTestSuite) TestUserLookupFailure() {
	suite.users.EXPECT().GetUserFromEmail(context.Background(), "curator@example.com").Return(nil, errors.New("connection refused"))

	err := suite.call("Bearer " + suite.signedToken(jwt.SigningMethodHS256, secretKey, validClaims()))

	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestEmptySecretRejected() {
	manager := auth.NewAuthManager(configs.Auth{}, suite.users, zaptest.NewLogger(suite.T()))

	request := connect.NewRequest(&struct{}{})
	request.Header().Set("Authorization", "Bearer "+suite.signedToken(jwt.SigningMethodHS256, "", validClaims()))

	_, err := manager.AdminInterceptor()(suite.next)(context.Background(), request)

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.Nil(suite.seenUser)
	suite.users.AssertNotCalled(suite.T(), "GetUserFromEmail", mock.Anything, mock.Anything)
}
