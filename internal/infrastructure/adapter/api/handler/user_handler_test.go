package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	userUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/user"
	coremocks "github.com/menix-gg/arena-backend/mocks/port/core"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func storedUser(t *testing.T, password string, wallet int64) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := entity.NewUser("u-1", "player", "player@example.com", string(hash), fixedTimeProvider(t))
	require.NoError(t, err)
	user.SetWallet(wallet, fixedTimeProvider(t))
	return user
}

func userRouter(t *testing.T, userRepo *persistencemocks.MockUserRepository) *gin.Engine {
	users := userUseCase.NewUserUseCase(userRepo, fixedTimeProvider(t), relaxedLogger(t))
	h := NewUserHandler(users, relaxedLogger(t))

	router := gin.New()
	router.POST("/api/users", h.Authenticate)
	router.GET("/api/users", h.ListUsers)
	router.GET("/api/users/:userId", h.GetUser)
	return router
}

func jsonBody(body any) *bytes.Reader {
	payload, _ := json.Marshal(body)
	return bytes.NewReader(payload)
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateEndpoint(t *testing.T) {
	t.Run("existing user logs in with 200", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByEmail(mock.Anything, "player@example.com").
			Return(storedUser(t, "hunter2", 5000), nil).Once()

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"email":    "player@example.com",
			"password": "hunter2",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			User    struct {
				ID     string `json:"id"`
				Email  string `json:"email"`
				Wallet int64  `json:"wallet"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "u-1", resp.User.ID)
		assert.Equal(t, int64(5000), resp.User.Wallet)
	})

	t.Run("unknown identifier provisions an account with 201", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByEmail(mock.Anything, "new@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Return(nil).Once()

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"email":    "new@example.com",
			"password": "hunter2",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"wallet":0`)
	})

	t.Run("credentials never leak into the response", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByEmail(mock.Anything, "player@example.com").
			Return(storedUser(t, "hunter2", 0), nil).Once()

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"email":    "player@example.com",
			"password": "hunter2",
		})

		body := w.Body.String()
		assert.NotContains(t, body, "hunter2")
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "$2a$")
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByEmail(mock.Anything, "player@example.com").
			Return(storedUser(t, "hunter2", 0), nil).Once()

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"email":    "player@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("missing password is 400 without any lookup", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"email": "player@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("identifier field works for older clients", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByEmail(mock.Anything, "player@example.com").
			Return(storedUser(t, "hunter2", 0), nil).Once()

		w := postJSON(userRouter(t, userRepo), "/api/users", gin.H{
			"identifier": "player@example.com",
			"password":   "hunter2",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	userRepo := persistencemocks.NewMockUserRepository(t)
	userRepo.EXPECT().List(mock.Anything).
		Return([]*entity.User{storedUser(t, "hunter2", 1500)}, nil).Once()

	w := httptest.NewRecorder()
	userRouter(t, userRepo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wallet":1500`)
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestGetUserEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByID(mock.Anything, "u-1").
			Return(storedUser(t, "hunter2", 500), nil).Once()

		w := httptest.NewRecorder()
		userRouter(t, userRepo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u-1"`)
	})

	t.Run("missing user is 404", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		userRepo.EXPECT().GetByID(mock.Anything, "u-404").
			Return(nil, errs.ErrUserNotFound).Once()

		w := httptest.NewRecorder()
		userRouter(t, userRepo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u-404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
