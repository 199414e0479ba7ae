package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase lets tests script the outcome of Register and Login and
// capture what the handler passed down.
type stubUserUsecase struct {
	output   *usecase.AuthOutput
	err      error
	register usecase.RegisterInput
	login    usecase.LoginInput
}

func (s *stubUserUsecase) Register(_ context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	s.register = input

	return s.output, s.err
}

func (s *stubUserUsecase) Login(_ context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	s.login = input

	return s.output, s.err
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubUserUsecase{
		output: &usecase.AuthOutput{
			AccessToken: "signed-token",
			User: &entity.User{
				ID:       userID,
				Username: "alice",
				Email:    "alice@example.com",
				Role:     entity.RoleCustomer,
			},
		},
	}
	h := NewAuthHandler(stub, slog.Default())

	body := `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "s3cret-pass",
		"repeated_password": "s3cret-pass",
		"role": "customer"
	}`
	c, rec := newTestContext(t, http.MethodPost, "/api/registration", body)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "password")

	assert.Equal(t, "alice", stub.register.Username)
	assert.Equal(t, entity.RoleCustomer, stub.register.Role)
	assert.Equal(t, "s3cret-pass", stub.register.RepeatedPassword)
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	stub := &stubUserUsecase{}
	h := NewAuthHandler(stub, slog.Default())

	body := `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "s3cret-pass",
		"repeated_password": "s3cret-pass",
		"role": "admin"
	}`
	c, _ := newTestContext(t, http.MethodPost, "/api/registration", body)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, stub.register.Username)
}

func TestAuthHandler_Register_PropagatesDomainError(t *testing.T) {
	stub := &stubUserUsecase{err: domainerrors.ErrEmailAlreadyExists}
	h := NewAuthHandler(stub, slog.Default())

	body := `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "s3cret-pass",
		"repeated_password": "s3cret-pass",
		"role": "customer"
	}`
	c, _ := newTestContext(t, http.MethodPost, "/api/registration", body)

	err := h.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubUserUsecase{
		output: &usecase.AuthOutput{
			AccessToken: "signed-token",
			User: &entity.User{
				ID:       uuid.New(),
				Username: "bob",
				Role:     entity.RoleBusiness,
			},
		},
	}
	h := NewAuthHandler(stub, slog.Default())

	c, rec := newTestContext(t, http.MethodPost, "/api/login", `{"username": "bob", "password": "s3cret-pass"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Equal(t, "bob", stub.login.Username)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubUserUsecase{}, slog.Default())

	c, _ := newTestContext(t, http.MethodPost, "/api/login", `{"username": "bob"}`)

	err := h.Login(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
