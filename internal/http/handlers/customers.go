package handlers

import (
	"net/http"

	intconfig "travelagent/internal/config"
	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/http/middleware"
	"travelagent/internal/repositories"
	"travelagent/internal/services"

	"github.com/gin-gonic/gin"
)

func customerService(c *gin.Context) services.CustomerService {
	return services.CustomerService{
		Customers: repositories.CustomerRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/customers
func GetCustomers(c *gin.Context) {
	list, err := customerService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/customers/:id
func GetCustomerByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	customer, err := customerService(c).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var payload models.Customer
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = 0
	created, err := customerService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	var payload models.Customer
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.ID != 0 && payload.ID != id {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "body id does not match path"})
		return
	}
	payload.ID = id
	updated, err := customerService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := customerService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
