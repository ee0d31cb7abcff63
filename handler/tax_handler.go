package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taxmitra/itr-engine/dto"
	"github.com/taxmitra/itr-engine/rules"
	"github.com/taxmitra/itr-engine/service"
)

type TaxHandler struct {
	taxService *service.TaxService
}

func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
	}
}

// ComputeTax handles POST /tax/compute
func (h *TaxHandler) ComputeTax(c *gin.Context) {
	var req dto.TaxComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result := h.taxService.Compute(req.NetIncome, req.Age, req.AssessmentYear, req.Regime)
	c.JSON(http.StatusOK, result)
}

// ListRules handles GET /rules
func (h *TaxHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": rules.List()})
}
