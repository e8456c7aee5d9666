//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/handler/middleware"
	"stand-ledger/internal/pkg/cookie"
	"stand-ledger/tests/common/httptest"
	usecasemock "stand-ledger/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func actorEcho(c *gin.Context) {
	actor := middleware.GetActor(c)
	c.JSON(http.StatusOK, gin.H{"identity": actor.Identity, "staff": actor.IsStaff()})
}

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/staff", auth.RequireStaff(), actorEcho)
	router.GET("/public", auth.OptionalStaff(), actorEcho)
	return router, validator
}

func TestRequireStaff(t *testing.T) {
	t.Run("bearer token of a staff member", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good").Return(staff.Member("staff1"), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, "good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"identity":"staff1","staff":true}`, rec.Body.String())
	})

	t.Run("session cookie wins over the header", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("from-cookie").Return(staff.Member("staff2"), nil)

		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/staff", nil,
			[]*http.Cookie{{Name: cookie.StaffSessionCookieName, Value: "from-cookie"}}, "from-header")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "staff2")
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Staff session required")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(staff.Guest(), errors.New("token is expired"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	t.Run("valid token without staff role", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("visitor").Return(staff.Guest(), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, "visitor")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Staff session required")
	})
}

func TestOptionalStaff(t *testing.T) {
	t.Run("no token is a guest", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"identity":"","staff":false}`, rec.Body.String())
	})

	t.Run("invalid token is a guest", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("bad").Return(staff.Guest(), errors.New("signature is invalid"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "bad")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"staff":false`)
	})

	t.Run("valid token attaches the actor", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good").Return(staff.Member("staff1"), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "good")
		assert.JSONEq(t, `{"identity":"staff1","staff":true}`, rec.Body.String())
	})
}
