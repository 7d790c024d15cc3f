package repositories

import (
	"database/sql"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) List() ([]models.Customer, error) {
	rows, err := r.DB.Query(`SELECT id, name, email, phone_number FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(`SELECT id, name, email, phone_number FROM customers WHERE id=?`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber)
	return c, err
}

func (r CustomerRepository) GetByEmail(email string) (models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(`SELECT id, name, email, phone_number FROM customers WHERE email=?`, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber)
	return c, err
}

func (r CustomerRepository) Create(c models.Customer) (models.Customer, error) {
	return r.CreateIn(r.DB, c)
}

// CreateIn inserts within the given transaction scope. A duplicate email
// surfaces as a ConflictError.
func (r CustomerRepository) CreateIn(q DBTX, c models.Customer) (models.Customer, error) {
	res, err := q.Exec(`INSERT INTO customers (name, email, phone_number) VALUES (?,?,?)`,
		c.Name, c.Email, c.PhoneNumber)
	if err != nil {
		if IsDuplicateKey(err) {
			return c, domain.ConflictError{Resource: "customer", Msg: "email is not unique", Err: err}
		}
		return c, err
	}
	c.ID, err = res.LastInsertId()
	return c, err
}

func (r CustomerRepository) Update(c models.Customer) error {
	res, err := r.DB.Exec(`UPDATE customers SET name=?, email=?, phone_number=? WHERE id=?`,
		c.Name, c.Email, c.PhoneNumber, c.ID)
	if err != nil {
		if IsDuplicateKey(err) {
			return domain.ConflictError{Resource: "customer", Msg: "email is not unique", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// id may still exist with identical values; confirm before 404
		if _, err := r.GetByID(c.ID); err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r CustomerRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
