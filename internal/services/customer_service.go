package services

import (
	"database/sql"
	"errors"
	"fmt"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/repositories"
	"travelagent/internal/utils"
)

type CustomerService struct {
	Customers repositories.CustomerRepository
	RequestID string
}

func (s CustomerService) List() ([]models.Customer, error) {
	list, err := s.Customers.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s CustomerService) GetByID(id int64) (models.Customer, error) {
	c, err := s.Customers.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFoundError{Resource: "customer", Err: err}
	}
	if err != nil {
		return c, domain.InternalError{Err: err}
	}
	return c, nil
}

func (s CustomerService) Create(c models.Customer) (models.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return c, err
	}
	created, err := s.Customers.Create(c)
	if err != nil {
		if domain.IsConflict(err) {
			return c, err
		}
		return c, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "customer", "create", fmt.Sprintf("customer_id=%d", created.ID))
	return created, nil
}

// Update rewrites an existing customer. The email stays unique across
// everyone but the customer being updated.
func (s CustomerService) Update(c models.Customer) (models.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return c, err
	}
	if _, err := s.GetByID(c.ID); err != nil {
		return c, err
	}
	if existing, err := s.Customers.GetByEmail(c.Email); err == nil && existing.ID != c.ID {
		return c, domain.ConflictError{Resource: "customer", Msg: "email is not unique"}
	}
	if err := s.Customers.Update(c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "customer", Err: err}
		}
		if domain.IsConflict(err) {
			return c, err
		}
		return c, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "customer", "update", fmt.Sprintf("customer_id=%d", c.ID))
	return c, nil
}

// Delete removes the customer; dependent flight and travel bookings go with
// them through the FK cascade.
func (s CustomerService) Delete(id int64) error {
	if err := s.Customers.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "customer", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "customer", "delete", fmt.Sprintf("customer_id=%d", id))
	return nil
}
