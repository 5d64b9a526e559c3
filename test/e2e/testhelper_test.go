package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/handler"
	pgRepo "github.com/boardline/boardline-backend/internal/adapter/repository/postgres"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/infrastructure/auth"
	"github.com/boardline/boardline-backend/internal/infrastructure/database"
	"github.com/boardline/boardline-backend/internal/infrastructure/middleware"
	"github.com/boardline/boardline-backend/internal/infrastructure/server"
	infraStorage "github.com/boardline/boardline-backend/internal/infrastructure/storage"
	authUC "github.com/boardline/boardline-backend/internal/usecase/auth"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
	"github.com/boardline/boardline-backend/internal/usecase/inquiry"
	"github.com/boardline/boardline-backend/internal/usecase/media"
	"github.com/boardline/boardline-backend/internal/usecase/promotion"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"

	adminEmail    = "admin@boardline.bg"
	adminPassword = "boardline-admin-pass"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Storage    *stubObjectStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	productRepo := pgRepo.NewProductRepo(pool)
	variantRepo := pgRepo.NewImageVariantRepo(pool)
	collectionRepo := pgRepo.NewCollectionRepo(pool)
	promotionRepo := pgRepo.NewPromotionRepo(pool)
	inquiryRepo := pgRepo.NewInquiryRepo(pool)
	adminRepo := pgRepo.NewAdminUserRepo(pool)
	refreshTokenRepo := pgRepo.NewRefreshTokenRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	logger := zap.NewNop()

	// In-memory object storage; the variant deriver runs for real.
	stubStorage := newStubObjectStorage()
	deriver := infraStorage.NewVariantDeriver(logger)

	authSvc := authUC.NewService(adminRepo, refreshTokenRepo, jwtSvc, passwordHasher, 24*time.Hour)
	catalogSvc := catalog.NewService(productRepo, collectionRepo, nil, 0, logger)
	mediaSvc := media.NewService(variantRepo, productRepo, stubStorage, deriver, valueobject.DefaultVariantSpecs(), "product-images", logger)
	promotionSvc := promotion.NewService(promotionRepo)
	inquirySvc := inquiry.NewService(inquiryRepo, productRepo)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       handler.NewAuthHandler(authSvc),
		ProductHandler:    handler.NewProductHandler(catalogSvc),
		CollectionHandler: handler.NewCollectionHandler(catalogSvc),
		MediaHandler:      handler.NewMediaHandler(mediaSvc, 15<<20),
		PromotionHandler:  handler.NewPromotionHandler(promotionSvc),
		InquiryHandler:    handler.NewInquiryHandler(inquirySvc),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtSvc),
		Logger:            logger,
		Environment:       "test",
	})

	ts := httptest.NewServer(router.Engine())

	app := &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Storage:   stubStorage,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	// Admin accounts are seeded out of band, there is no register endpoint.
	hash, err := passwordHasher.Hash(adminPassword)
	require.NoError(t, err)
	admin := entity.NewAdminUser(adminEmail, hash, "Test Admin")
	require.NoError(t, adminRepo.Create(ctx, admin))

	return app
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// uploadImage posts a multipart image upload with optional extra form
// fields (crop coordinates, position).
func (app *TestApp) uploadImage(t *testing.T, path string, image []byte, fields map[string]string, headers map[string]string) (*http.Response, error) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "board.jpg")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func loginAsAdmin(t *testing.T, app *TestApp) string {
	t.Helper()

	resp, err := app.post("/auth/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	return loginResp["access_token"].(string)
}

// encodeTestJPEG renders a solid-color JPEG of the given dimensions.
func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 30, G: 90, B: 160, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

// stubObjectStorage keeps written objects in memory so uploads and the
// reconciliation path can run without S3.
type stubObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newStubObjectStorage() *stubObjectStorage {
	return &stubObjectStorage{objects: make(map[string][]byte)}
}

func (s *stubObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *stubObjectStorage) Resolve(ctx context.Context, key string) (string, error) {
	return "https://stub-storage.example.com/" + key, nil
}

func (s *stubObjectStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *stubObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *stubObjectStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
