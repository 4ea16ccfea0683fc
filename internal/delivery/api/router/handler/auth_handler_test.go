package handler

import (
	"net/http"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/register", `{"username":"alice","password":"correcthorse"}`)

	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "alice", Password: "correcthorse"}).
		Return(&usecase.RegisterOutput{Username: "alice"}, nil).Once()

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", decodeData[usecase.RegisterOutput](t, rec).Username)
	assert.NotContains(t, rec.Body.String(), "correcthorse")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/register", `{"username":"alice","password":"correcthorse"}`)

	authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username taken")).Once()

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/register", `{"username":""}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, map[string]any{"username": "required"}, errInfo.Details)
}

func TestAuthHandler_EmptyPassword(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	e := newTestEcho()
	body := `{"username":"alice","password":""}`

	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "alice", Password: ""}).
		Return(&usecase.RegisterOutput{Username: "alice"}, nil).Once()
	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: ""}).
		Return(&usecase.LoginOutput{Authenticated: true, Username: "alice"}, nil).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register", body)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newJSONContext(e, http.MethodPost, "/api/auth/login", body)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[usecase.LoginOutput](t, rec).Authenticated)
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"alice","password":"correcthorse"}`)

	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "correcthorse"}).
		Return(&usecase.LoginOutput{Authenticated: true, Username: "alice"}, nil).Once()

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeData[usecase.LoginOutput](t, rec)
	assert.True(t, out.Authenticated)
	assert.Equal(t, "alice", out.Username)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")).Once()

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", errInfo.Code)
	assert.Equal(t, "Invalid username or password", errInfo.Message)
	assert.Nil(t, errInfo.Details)
	assert.NotContains(t, rec.Body.String(), "password mismatch")
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestAuthHandler_Login_UnexpectedErrorPropagates(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"alice","password":"x"}`)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	assert.ErrorContains(t, h.Login(c), "connection refused")
}
