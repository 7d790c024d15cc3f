package repositories

import (
	"database/sql"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT id, name, email, role FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`SELECT id, name, email, role FROM users WHERE id=?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	return u, err
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`SELECT id, name, email, role, password_hash FROM users WHERE email=?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash)
	return u, err
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.DB.Exec(`INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)`,
		u.Name, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		if IsDuplicateKey(err) {
			return u, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return u, err
	}
	u.ID, err = res.LastInsertId()
	return u, err
}
