package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, login_id, email, password_hash, name, role, department, status, phone, created_at, updated_at`

// Create persiste un nuevo usuario. Las restricciones únicas de login_id y
// email convierten un duplicado en domain.ErrUserAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, login_id, email, password_hash, name, role, department, status, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.LoginID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Department, user.Status, user.Phone,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByLoginID obtiene un usuario por su identificador de acceso.
func (r *UserRepo) GetByLoginID(loginID string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE login_id = $1`, loginID)
}

// GetByLoginIDOrEmail detecta duplicados contra ambas columnas únicas en una consulta.
func (r *UserRepo) GetByLoginIDOrEmail(loginID, email string) (*entity.User, error) {
	return r.getOne(
		`SELECT `+userColumns+` FROM users WHERE login_id = $1 OR email = $2 LIMIT 1`,
		loginID, email,
	)
}

func (r *UserRepo) getOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.LoginID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.Department, &u.Status, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista usuarios con búsqueda por nombre/login/email y filtros de rol y estado.
func (r *UserRepo) List(search, role, status string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR login_id ILIKE $%d OR email ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if role != "" {
		query += fmt.Sprintf(" AND role = $%d", pos)
		args = append(args, role)
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.LoginID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
			&u.Department, &u.Status, &u.Phone, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count cuenta usuarios aplicando los mismos filtros que List.
func (r *UserRepo) Count(search, role, status string) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR login_id ILIKE $%d OR email ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if role != "" {
		query += fmt.Sprintf(" AND role = $%d", pos)
		args = append(args, role)
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Update actualiza los datos de perfil de un usuario. El password se cambia
// solo por UpdatePassword.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET login_id = $2, email = $3, name = $4, role = $5, department = $6, status = $7, phone = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.LoginID, user.Email, user.Name, user.Role, user.Department,
		user.Status, user.Phone, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword reescribe solo el hash de contraseña.
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
