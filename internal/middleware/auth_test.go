package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_quiz/internal/models"
	"event_quiz/internal/utils"
)

func setupRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetJWTSecret("test_secret")

	t.Run("缺少 Authorization 標頭", func(t *testing.T) {
		w := doRequest(setupRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("格式不是 Bearer token", func(t *testing.T) {
		w := doRequest(setupRouter(), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("無效的 token", func(t *testing.T) {
		w := doRequest(setupRouter(), "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("合法 token 可通過", func(t *testing.T) {
		token, err := utils.GenerateToken(1, string(models.RoleUser))
		require.NoError(t, err)

		w := doRequest(setupRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	utils.SetJWTSecret("test_secret")

	t.Run("一般用戶存取管理路由被拒", func(t *testing.T) {
		token, err := utils.GenerateToken(1, string(models.RoleUser))
		require.NoError(t, err)

		w := doRequest(setupRouter(models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("管理員可通過", func(t *testing.T) {
		token, err := utils.GenerateToken(1, string(models.RoleAdmin))
		require.NoError(t, err)

		w := doRequest(setupRouter(models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("super_admin 可管理題目", func(t *testing.T) {
		token, err := utils.GenerateToken(1, string(models.RoleSuperAdmin))
		require.NoError(t, err)

		w := doRequest(setupRouter(models.RoleAdmin, models.RoleSuperAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
