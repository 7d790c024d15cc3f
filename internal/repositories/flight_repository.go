package repositories

import (
	"database/sql"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

type FlightRepository struct {
	DB *sql.DB
}

func (r FlightRepository) List() ([]models.Flight, error) {
	rows, err := r.DB.Query(`SELECT id, number, departure, destination FROM flights ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(&f.ID, &f.Number, &f.Departure, &f.Destination); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FlightRepository) GetByID(id int64) (models.Flight, error) {
	var f models.Flight
	err := r.DB.QueryRow(`SELECT id, number, departure, destination FROM flights WHERE id=?`, id).
		Scan(&f.ID, &f.Number, &f.Departure, &f.Destination)
	return f, err
}

func (r FlightRepository) GetByNumber(number string) (models.Flight, error) {
	var f models.Flight
	err := r.DB.QueryRow(`SELECT id, number, departure, destination FROM flights WHERE number=?`, number).
		Scan(&f.ID, &f.Number, &f.Departure, &f.Destination)
	return f, err
}

func (r FlightRepository) Create(f models.Flight) (models.Flight, error) {
	res, err := r.DB.Exec(`INSERT INTO flights (number, departure, destination) VALUES (?,?,?)`,
		f.Number, f.Departure, f.Destination)
	if err != nil {
		if IsDuplicateKey(err) {
			return f, domain.ConflictError{Resource: "flight", Msg: "flight number is not unique", Err: err}
		}
		return f, err
	}
	f.ID, err = res.LastInsertId()
	return f, err
}

func (r FlightRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM flights WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
