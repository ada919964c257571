package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

type MockCapabilityLoader struct {
	mock.Mock
}

func (m *MockCapabilityLoader) GetCapability(ctx context.Context, userID string) (domain.Capability, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Capability), args.Error(1)
}

func signToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(testSecret))

	w := doGet(r, "Bearer "+signToken(t, "user-1", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")

	w = doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "Bearer "+signToken(t, "user-1", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")

	w = doGet(r, "Bearer "+signToken(t, "", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoadCapabilityAndRequireAdmin(t *testing.T) {
	loader := new(MockCapabilityLoader)
	loader.On("GetCapability", mock.Anything, "admin").Return(domain.NewCapability("admin", domain.RoleAdmin), nil)
	loader.On("GetCapability", mock.Anything, "clerk").Return(domain.NewCapability("clerk", domain.RoleStandard, "s1"), nil)
	loader.On("GetCapability", mock.Anything, "gone").Return(domain.Capability{}, apperrors.ErrNotFound)

	r := newRouter(AuthMiddleware(testSecret), LoadCapability(loader), RequireAdmin())

	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+signToken(t, "admin", time.Hour)).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer "+signToken(t, "clerk", time.Hour)).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+signToken(t, "gone", time.Hour)).Code)
	loader.AssertExpectations(t)
}

func TestRateLimit(t *testing.T) {
	limiterInstance, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := newRouter(RateLimit(limiterInstance))

	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "").Code)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, GetLoggerFromCtx(context.Background()))
}
