package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/mes-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/mes-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests-32chars!"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "mes-pro-test"
	testExpMin    = 60
)

// fakeUserRepo implementa solo lo que el middleware consulta (GetByID);
// el resto de métodos del puerto no se usa en estos tests.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByLoginID(_ string) (*entity.User, error)           { return nil, nil }
func (f *fakeUserRepo) GetByLoginIDOrEmail(_, _ string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List(_, _, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(_, _, _ string) (int, error) { return 0, nil }
func (f *fakeUserRepo) Update(_ *entity.User) error       { return nil }
func (f *fakeUserRepo) UpdatePassword(_, _ string) error  { return nil }
func (f *fakeUserRepo) Delete(_ string) error             { return nil }

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT, cargar el usuario y dejar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(repo *fakeUserRepo, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func repoWithUser(role, status string) *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{
		testUserID: {ID: testUserID, LoginID: "tester", Role: role, Status: status},
	}}
}

// tokenForUser genera un JWT de acceso para testUserID.
func tokenForUser(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.GenerateAccess(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive), entity.RoleOperator)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin Authorization header la petición debe rechazarse")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive), entity.RoleOperator)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"el esquema debe ser exactamente Bearer")
}

func TestAuthMiddleware_TokenFirmadoConOtroSecret(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive), entity.RoleOperator)
	tok, err := pkgjwt.GenerateAccess("otro-secreto-igual-de-largo-que-el-real!!", testUserID,
		entity.RoleOperator, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un refresh token no debe autenticar peticiones aunque la firma sea válida.
func TestAuthMiddleware_RefreshTokenNoAutentica(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive), entity.RoleOperator)
	tok, err := pkgjwt.GenerateRefresh(testJWTSecret, testUserID, entity.RoleOperator, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token vigente de un usuario suspendido después de emitirse debe rechazarse.
func TestAuthMiddleware_UsuarioSuspendido(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusSuspended), entity.RoleOperator)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una suspensión debe hacer efecto aunque el token siga vigente")
}

func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{users: map[string]*entity.User{}}, entity.RoleOperator)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleAdmin, entity.UserStatusActive), entity.RoleAdmin)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a ruta restringida a ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"],
		"el rol en locals debe ser el del usuario cargado de la DB")
}

func TestRequireRole_OperadorNoAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive),
		entity.RoleAdmin, entity.RoleManager)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"OPERATOR no debe acceder a una ruta de ADMIN/MANAGER")
}

// El rol que decide es el actual de la DB, no el que quedó en el token.
func TestRequireRole_UsaRolActualDeLaDB(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleOperator, entity.UserStatusActive), entity.RoleAdmin)
	// Token emitido cuando el usuario aún era ADMIN.
	resp := doRequest(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una degradación de rol debe hacer efecto en la siguiente petición")
}
