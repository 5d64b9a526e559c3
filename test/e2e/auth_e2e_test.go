package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Auth_Login(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("logs in with valid credentials", func(t *testing.T) {
		resp, err := app.post("/auth/login", map[string]string{
			"email":    adminEmail,
			"password": adminPassword,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var loginResp map[string]any
		parseResponse(t, resp, &loginResp)

		assert.NotEmpty(t, loginResp["access_token"])
		assert.NotEmpty(t, loginResp["refresh_token"])
		admin := loginResp["admin"].(map[string]any)
		assert.Equal(t, adminEmail, admin["email"])
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		resp, err := app.post("/auth/login", map[string]string{
			"email":    adminEmail,
			"password": "definitely-wrong",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		resp, err := app.post("/auth/login", map[string]string{
			"email":    "nobody@boardline.bg",
			"password": adminPassword,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Auth_RefreshRotation(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	resp, err := app.post("/auth/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	firstRefresh := loginResp["refresh_token"].(string)

	var secondRefresh string

	t.Run("rotates the refresh token", func(t *testing.T) {
		resp, err := app.post("/auth/refresh", map[string]string{
			"refresh_token": firstRefresh,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var refreshResp map[string]any
		parseResponse(t, resp, &refreshResp)

		assert.NotEmpty(t, refreshResp["access_token"])
		secondRefresh = refreshResp["refresh_token"].(string)
		assert.NotEqual(t, firstRefresh, secondRefresh)
	})

	t.Run("rejects the rotated-out token", func(t *testing.T) {
		resp, err := app.post("/auth/refresh", map[string]string{
			"refresh_token": firstRefresh,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("accepts the replacement token", func(t *testing.T) {
		resp, err := app.post("/auth/refresh", map[string]string{
			"refresh_token": secondRefresh,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Auth_Logout(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	resp, err := app.post("/auth/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	accessToken := loginResp["access_token"].(string)
	refreshToken := loginResp["refresh_token"].(string)

	t.Run("revokes every refresh token", func(t *testing.T) {
		resp, err := app.post("/auth/logout", nil, authHeader(accessToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.post("/auth/refresh", map[string]string{
			"refresh_token": refreshToken,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Auth_ProtectedRoutes(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("rejects requests without a token", func(t *testing.T) {
		resp, err := app.get("/admin/products", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		resp, err := app.get("/admin/products", authHeader("not-a-jwt"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}
