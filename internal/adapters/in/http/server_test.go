package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "github.com/DevonBastiansz/courier-manager/internal/adapters/in/http"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/jwtsign"
	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/queries"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a server with zero-value handlers. Request validation
// and authorization run before any handler touches its dependencies, so the
// rejection paths are exercisable without a database.
func newTestServer(signer ports.TokenSigner) *echo.Echo {
	server := httpin.NewServer(
		signer,
		commands.RegisterAccountCommandHandler{},
		commands.CreateShipmentCommandHandler{},
		commands.UpdateShipmentStatusCommandHandler{},
		queries.AuthenticateAccountQueryHandler{},
		queries.TrackShipmentQueryHandler{},
		queries.ListShipmentsQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func testSigner() jwtsign.Signer {
	return jwtsign.NewSigner([]byte("test-secret"), time.Hour)
}

func signedToken(t *testing.T, signer jwtsign.Signer, role account.Role) string {
	t.Helper()
	token, err := signer.Sign(ports.AccessClaims{
		AccountID: kernel.NewUUID(),
		Email:     "jane@example.com",
		Role:      role,
	})
	require.NoError(t, err)
	return token
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_MissingFields_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name, email, and password are required")
}

func TestRegister_MalformedBody_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingFields_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", `{"email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide both email and password")
}

func TestTrackShipment_ShortNumber_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodGet, "/api/shipments/TRK", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid tracking number")
}

func TestCreateShipment_NoToken_ReturnsUnauthorized(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodPost, "/api/shipments", "", `{"recipientName":"Bob"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateShipment_GarbageToken_ReturnsUnauthorized(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodPost, "/api/shipments", "not.a.token", `{"recipientName":"Bob"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestCreateShipment_TokenFromDifferentSecret_ReturnsUnauthorized(t *testing.T) {
	signer := testSigner()
	e := newTestServer(signer)

	foreign := jwtsign.NewSigner([]byte("other-secret"), time.Hour)
	token := signedToken(t, foreign, account.RoleClient)

	rec := doJSON(e, http.MethodPost, "/api/shipments", token, `{"recipientName":"Bob"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateShipment_MissingFields_ReturnsBadRequest(t *testing.T) {
	signer := testSigner()
	e := newTestServer(signer)
	token := signedToken(t, signer, account.RoleClient)

	rec := doJSON(e, http.MethodPost, "/api/shipments", token, `{"recipientName":"Bob"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Recipient name, address, and shipment details are required")
}

func TestListShipments_NoToken_ReturnsUnauthorized(t *testing.T) {
	e := newTestServer(testSigner())

	rec := doJSON(e, http.MethodGet, "/api/shipments", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateShipmentStatus_ClientRole_ReturnsForbidden(t *testing.T) {
	signer := testSigner()
	e := newTestServer(signer)
	token := signedToken(t, signer, account.RoleClient)

	rec := doJSON(e, http.MethodPut, "/api/shipments/"+kernel.NewUUID().String(), token, `{"status":"Delivered"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "permission")
}

func TestUpdateShipmentStatus_InvalidStatus_ReturnsBadRequest(t *testing.T) {
	signer := testSigner()
	e := newTestServer(signer)
	token := signedToken(t, signer, account.RoleAdmin)

	rec := doJSON(e, http.MethodPut, "/api/shipments/"+kernel.NewUUID().String(), token, `{"status":"Lost"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Valid status is required")
}

func TestUpdateShipmentStatus_MalformedID_ReturnsNotFound(t *testing.T) {
	signer := testSigner()
	e := newTestServer(signer)
	token := signedToken(t, signer, account.RoleAdmin)

	rec := doJSON(e, http.MethodPut, "/api/shipments/not-a-uuid", token, `{"status":"Delivered"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shipment not found")
}
