package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"padifood/internal/delivery/http/validator"
	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	mockUsecase "padifood/internal/mocks/usecase"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClientHandler(t *testing.T) (*ClientHandler, *mockUsecase.MockClientUsecase) {
	uc := mockUsecase.NewMockClientUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClientHandler(uc, logger), uc
}

// newJSONContext builds an echo context carrying a JSON body, with the
// request validator installed so handler validation runs as it would on
// the real server.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	e := echo.New()
	e.Validator = validator.New()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestClientHandler_Create(t *testing.T) {
	h, uc := newTestClientHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		Create(mock.Anything, usecase.CreateClientInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "analytical",
			Role:      "user",
		}).
		Return(&entity.User{
			ID:        userID,
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      entity.RoleUser,
		}, nil)

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"analytical","role":"user"}`
	c, rec := newJSONContext(http.MethodPost, "/api/clients", body)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, userID.String(), data["id"])
	assert.Equal(t, "ada@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestClientHandler_Create_ValidationFailure(t *testing.T) {
	h, _ := newTestClientHandler(t)

	// Missing password and a malformed email address.
	body := `{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email"}`
	c, _ := newJSONContext(http.MethodPost, "/api/clients", body)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestClientHandler_Create_ShortPassword(t *testing.T) {
	h, _ := newTestClientHandler(t)

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"abc"}`
	c, _ := newJSONContext(http.MethodPost, "/api/clients", body)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestClientHandler_List(t *testing.T) {
	h, uc := newTestClientHandler(t)

	uc.EXPECT().
		List(mock.Anything).
		Return([]*entity.User{
			{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser},
			{ID: uuid.New(), Email: "grace@example.com", Role: entity.RoleAdmin},
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/clients", "")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].([]any)
	assert.Len(t, data, 2)
}

func TestClientHandler_Get_InvalidID(t *testing.T) {
	h, _ := newTestClientHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/clients/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_ID", errorInfo["code"])
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	h, uc := newTestClientHandler(t)

	clientID := uuid.New()
	uc.EXPECT().
		Get(mock.Anything, clientID).
		Return(nil, domainerrors.ErrUserNotFound)

	c, _ := newJSONContext(http.MethodGet, "/api/clients/"+clientID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(clientID.String())

	err := h.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestClientHandler_Update_Partial(t *testing.T) {
	h, uc := newTestClientHandler(t)

	clientID := uuid.New()
	lastName := "King"
	role := "admin"
	uc.EXPECT().
		Update(mock.Anything, usecase.UpdateClientInput{
			ID:       clientID,
			LastName: &lastName,
			Role:     &role,
		}).
		Return(&entity.User{
			ID:        clientID,
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "King",
			Role:      entity.RoleAdmin,
		}, nil)

	body := `{"lastName":"King","role":"admin"}`
	c, rec := newJSONContext(http.MethodPut, "/api/clients/"+clientID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(clientID.String())

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "admin", data["role"])
}

func TestClientHandler_Update_DropsPasswordKeys(t *testing.T) {
	h, uc := newTestClientHandler(t)

	clientID := uuid.New()
	firstName := "Augusta Ada"
	uc.EXPECT().
		Update(mock.Anything, usecase.UpdateClientInput{
			ID:        clientID,
			FirstName: &firstName,
		}).
		Return(&entity.User{
			ID:        clientID,
			Email:     "ada@example.com",
			FirstName: "Augusta Ada",
			Role:      entity.RoleUser,
		}, nil)

	// Password keys in the payload never reach the update.
	body := `{"firstName":"Augusta Ada","password":"newpassword","passwordHash":"sneaky"}`
	c, rec := newJSONContext(http.MethodPut, "/api/clients/"+clientID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(clientID.String())

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientHandler_Update_EmptyPayload(t *testing.T) {
	h, _ := newTestClientHandler(t)

	clientID := uuid.New()

	// Only password keys supplied; after they are dropped nothing remains.
	body := `{"password":"newpassword"}`
	c, rec := newJSONContext(http.MethodPut, "/api/clients/"+clientID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(clientID.String())

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "EMPTY_UPDATE", errorInfo["code"])
}

func TestClientHandler_Delete(t *testing.T) {
	h, uc := newTestClientHandler(t)

	clientID := uuid.New()
	uc.EXPECT().
		Delete(mock.Anything, clientID).
		Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/clients/"+clientID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(clientID.String())

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Client deleted")
}
