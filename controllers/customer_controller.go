package controllers

import (
	"net/http"

	"admin-backend/services"
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// GetCustomers (GET /api/customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}
