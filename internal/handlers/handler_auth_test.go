package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/handlers"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, code string) (string, string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite Setup ---

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAuthSvc *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAuthSvc = new(MockAuthService)

	cfg := &config.Config{JWTSecret: "test-secret", IsProduction: true}
	container := &portssvc.ServiceContainer{Auth: suite.mockAuthSvc}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any, header http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) (dto.Response, []map[string]any) {
	var resp dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	raw, err := json.Marshal(resp.Data)
	suite.Require().NoError(err)
	var items []map[string]any
	suite.Require().NoError(json.Unmarshal(raw, &items))
	return resp, items
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.mockAuthSvc.On("Login", mock.Anything, "kakao-code").Return("access-jwt", "refresh-jwt", nil).Once()

	w := suite.postJSON("/users", dto.OAuthLoginRequest{Code: "kakao-code"}, nil)

	suite.Equal(http.StatusCreated, w.Code)
	resp, items := suite.decodeEnvelope(w)
	suite.Equal(http.StatusCreated, resp.Code)
	suite.Equal("success", resp.Message)
	suite.Require().Len(items, 1)
	suite.Equal("access-jwt", items[0]["access_token"])
	suite.Equal("refresh-jwt", items[0]["refresh_token"])
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingCode() {
	w := suite.postJSON("/users", map[string]string{}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp, items := suite.decodeEnvelope(w)
	suite.Equal("error", resp.Message)
	suite.Require().Len(items, 1)
	suite.NotEmpty(items[0]["error"])
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRefresh_Success() {
	suite.mockAuthSvc.On("Refresh", mock.Anything, "refresh-jwt").Return("new-access-jwt", nil).Once()

	header := http.Header{}
	header.Set("Authorization", "Bearer refresh-jwt")
	w := suite.postJSON("/users/refresh", nil, header)

	suite.Equal(http.StatusOK, w.Code)
	resp, items := suite.decodeEnvelope(w)
	suite.Equal("success", resp.Message)
	suite.Require().Len(items, 1)
	suite.Equal("new-access-jwt", items[0]["accessToken"])
}

func (suite *AuthHandlerTestSuite) TestRefresh_MissingHeader() {
	w := suite.postJSON("/users/refresh", nil, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "Refresh", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRefresh_RejectedCredential() {
	suite.mockAuthSvc.On("Refresh", mock.Anything, "revoked-jwt").Return("", apperrors.ErrUnauthorized).Once()

	header := http.Header{}
	header.Set("Authorization", "Bearer revoked-jwt")
	w := suite.postJSON("/users/refresh", nil, header)

	suite.Equal(http.StatusUnauthorized, w.Code)
	resp, _ := suite.decodeEnvelope(w)
	suite.Equal("error", resp.Message)
}

func (suite *AuthHandlerTestSuite) TestLogout_Success() {
	suite.mockAuthSvc.On("Logout", mock.Anything, "access-jwt").Return(nil).Once()

	header := http.Header{}
	header.Set("Authorization", "Bearer access-jwt")
	w := suite.postJSON("/users/logout", nil, header)

	suite.Equal(http.StatusOK, w.Code)
	resp, items := suite.decodeEnvelope(w)
	suite.Equal("success", resp.Message)
	suite.Require().Len(items, 1)
	suite.Equal(true, items[0]["success"])
}

func (suite *AuthHandlerTestSuite) TestLogout_WithoutCredentialStillSucceeds() {
	suite.mockAuthSvc.On("Logout", mock.Anything, "").Return(nil).Once()

	w := suite.postJSON("/users/logout", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	resp, _ := suite.decodeEnvelope(w)
	suite.Equal("success", resp.Message)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
