package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mes-pro/internal/application/auth"
	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/mes-pro/pkg/jwt"
)

const testSecret = "un-secreto-de-pruebas-suficientemente-largo"

// fakeUserRepo en memoria, indexado por id, loginId y email.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
	saved []string                // ids de UpdatePassword
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) GetByLoginID(loginID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.LoginID == loginID {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByLoginIDOrEmail(loginID, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.LoginID == loginID || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List(_, _, _ string, _, _ int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Count(_, _, _ string) (int, error)                     { return 0, nil }
func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) UpdatePassword(id, hash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
		f.saved = append(f.saved, id)
	}
	return nil
}
func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func buildAuthUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:            testSecret,
		AccessExpMinutes:  60,
		RefreshExpMinutes: 120,
		Issuer:            "mes-pro-test",
	}, bcrypt.MinCost) // costo mínimo para que los tests no sean lentos
}

func existingUser(status string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreta1"), bcrypt.MinCost)
	return &entity.User{
		ID:           "user-1",
		LoginID:      "jperez",
		Email:        "jperez@example.com",
		PasswordHash: string(hash),
		Name:         "Juana Pérez",
		Role:         entity.RoleOperator,
		Status:       status,
	}
}

func TestSignup_CreaUsuarioConDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUseCase(repo)

	out, err := uc.Signup(dto.SignupRequest{
		LoginID:  "nuevo",
		Email:    "nuevo@example.com",
		Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, out.User.Role, "sin rol explícito el default es OPERATOR")
	assert.Equal(t, entity.UserStatusActive, out.User.Status)
	assert.Equal(t, "nuevo", out.User.Name, "sin nombre el default es el loginId")
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)

	// El token emitido es de acceso y lleva el rol.
	claims, err := pkgjwt.ParseOfType(testSecret, out.Token, pkgjwt.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, claims.Role)
}

func TestSignup_LoginIDDuplicado(t *testing.T) {
	repo := newFakeUserRepo(existingUser(entity.UserStatusActive))
	uc := buildAuthUseCase(repo)

	_, err := uc.Signup(dto.SignupRequest{
		LoginID:  "jperez",
		Email:    "otra@example.com",
		Password: "secreta1",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestSignup_RolInvalido(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())
	_, err := uc.Signup(dto.SignupRequest{
		LoginID:  "nuevo",
		Email:    "nuevo@example.com",
		Password: "secreta1",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Exitoso(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo(existingUser(entity.UserStatusActive)))
	out, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, "jperez", out.User.LoginID)
	assert.NotEmpty(t, out.Token)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error,
// sin revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo(existingUser(entity.UserStatusActive)))

	_, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{LoginID: "fantasma", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Una cuenta suspendida se rechaza aun con la contraseña correcta.
func TestLogin_CuentaSuspendida(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo(existingUser(entity.UserStatusSuspended)))
	_, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrSuspendedAccount)
}

func TestRefresh_EmiteNuevoAcceso(t *testing.T) {
	user := existingUser(entity.UserStatusActive)
	uc := buildAuthUseCase(newFakeUserRepo(user))

	login, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "secreta1"})
	require.NoError(t, err)

	out, err := uc.Refresh(login.RefreshToken)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseOfType(testSecret, out.Token, pkgjwt.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

// Un token de acceso no sirve para renovar.
func TestRefresh_RechazaTokenDeAcceso(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo(existingUser(entity.UserStatusActive)))
	login, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Refresh(login.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_UsuarioSuspendidoDespues(t *testing.T) {
	user := existingUser(entity.UserStatusActive)
	repo := newFakeUserRepo(user)
	uc := buildAuthUseCase(repo)

	login, err := uc.Login(dto.LoginRequest{LoginID: "jperez", Password: "secreta1"})
	require.NoError(t, err)

	user.Status = entity.UserStatusSuspended
	_, err = uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"una suspensión posterior invalida la renovación")
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	user := existingUser(entity.UserStatusActive)
	repo := newFakeUserRepo(user)
	uc := buildAuthUseCase(repo)

	err := uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva-clave",
	})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.Empty(t, repo.saved, "no debe persistirse ningún hash")

	err = uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secreta1",
		NewPassword:     "nueva-clave",
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("nueva-clave")))
}

func TestProfile_NoExiste(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())
	_, err := uc.Profile("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
