package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Inquiries(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := loginAsAdmin(t, app)
	productID := createProductForImages(t, app, token, "inquiry-board")

	var inquiryID string

	t.Run("customer submits an inquiry cart", func(t *testing.T) {
		submitReq := map[string]any{
			"customer_name":  "Ivan Petrov",
			"customer_email": "ivan@example.com",
			"customer_phone": "+359888123456",
			"message":        "Full setup please",
			"language":       "bg",
			"items": []map[string]any{
				{"product_id": productID, "quantity": 2, "note": "size 158"},
			},
		}

		resp, err := app.post("/inquiries", submitReq, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var inquiryResp map[string]any
		parseResponse(t, resp, &inquiryResp)

		inquiryID = inquiryResp["id"].(string)
		assert.Equal(t, "new", inquiryResp["status"])
		assert.Equal(t, "bg", inquiryResp["language"])
		items := inquiryResp["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])
	})

	t.Run("rejects an inquiry for an unknown product", func(t *testing.T) {
		submitReq := map[string]any{
			"customer_name":  "Ivan Petrov",
			"customer_email": "ivan@example.com",
			"items": []map[string]any{
				{"product_id": "00000000-0000-0000-0000-000000000000", "quantity": 1},
			},
		}

		resp, err := app.post("/inquiries", submitReq, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		submitReq := map[string]any{
			"customer_name":  "Ivan Petrov",
			"customer_email": "ivan@example.com",
			"items":          []map[string]any{},
		}

		resp, err := app.post("/inquiries", submitReq, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("admin lists and resolves inquiries", func(t *testing.T) {
		resp, err := app.get("/admin/inquiries?status=new", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)
		require.Len(t, listResp["inquiries"].([]any), 1)

		resp, err = app.put("/admin/inquiries/"+inquiryID+"/status", map[string]string{
			"status": "handled",
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var inquiryResp map[string]any
		parseResponse(t, resp, &inquiryResp)
		assert.Equal(t, "handled", inquiryResp["status"])

		resp, err = app.get("/admin/inquiries?status=new", authHeader(token))
		require.NoError(t, err)
		parseResponse(t, resp, &listResp)
		assert.Empty(t, listResp["inquiries"].([]any))
	})
}

func TestE2E_Promotions(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := loginAsAdmin(t, app)
	now := time.Now().UTC()

	createPromotion := func(t *testing.T, title string, startsAt, endsAt time.Time, enabled bool) string {
		t.Helper()

		createReq := map[string]any{
			"title":     map[string]string{"en": title},
			"body":      map[string]string{"en": "Seasonal discount."},
			"link_url":  "https://boardline.bg/collections/winter",
			"starts_at": startsAt.Format(time.RFC3339),
			"ends_at":   endsAt.Format(time.RFC3339),
			"enabled":   enabled,
		}

		resp, err := app.post("/admin/promotions", createReq, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var promoResp map[string]any
		parseResponse(t, resp, &promoResp)
		return promoResp["id"].(string)
	}

	activeID := createPromotion(t, "Season opening", now.Add(-time.Hour), now.Add(24*time.Hour), true)
	createPromotion(t, "Disabled", now.Add(-time.Hour), now.Add(24*time.Hour), false)
	createPromotion(t, "Expired", now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)

	t.Run("public listing shows only live promotions", func(t *testing.T) {
		resp, err := app.get("/promotions/active", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)

		promotions := listResp["promotions"].([]any)
		require.Len(t, promotions, 1)
		assert.Equal(t, activeID, promotions[0].(map[string]any)["id"])
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		createReq := map[string]any{
			"title":     map[string]string{"en": "Backwards"},
			"body":      map[string]string{"en": "Backwards window."},
			"starts_at": now.Add(24 * time.Hour).Format(time.RFC3339),
			"ends_at":   now.Format(time.RFC3339),
			"enabled":   true,
		}

		resp, err := app.post("/admin/promotions", createReq, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("delete removes the promotion", func(t *testing.T) {
		resp, err := app.delete("/admin/promotions/"+activeID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/promotions/active", nil)
		require.NoError(t, err)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)
		assert.Empty(t, listResp["promotions"].([]any))
	})
}
