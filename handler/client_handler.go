package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taxmitra/itr-engine/dto"
	"github.com/taxmitra/itr-engine/export"
	"github.com/taxmitra/itr-engine/store"
)

type ClientHandler struct {
	store *store.ClientStore
}

func NewClientHandler(clientStore *store.ClientStore) *ClientHandler {
	return &ClientHandler{
		store: clientStore,
	}
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients := h.store.List()
	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: clients,
		Count:   len(clients),
	})
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	summary, ok := h.store.Get(c.Param("id"))
	if !ok {
		sendError(c, http.StatusNotFound, "Client not found", nil)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ClientReport handles GET /clients/:id/report
func (h *ClientHandler) ClientReport(c *gin.Context) {
	summary, ok := h.store.Get(c.Param("id"))
	if !ok {
		sendError(c, http.StatusNotFound, "Client not found", nil)
		return
	}

	filename := fmt.Sprintf("%s_%s_ITR_Summary.pdf",
		strings.ReplaceAll(summary.Name, " ", "_"), summary.AssessmentYear)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WritePDF(c.Writer, summary); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render report", err)
	}
}

// ExportCSV handles GET /clients/export/csv
func (h *ClientHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="all_clients_itr_summary.csv"`)

	if err := export.WriteCSV(c.Writer, h.store.List()); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render CSV", err)
	}
}

// ExportXLSX handles GET /clients/export/xlsx
func (h *ClientHandler) ExportXLSX(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="all_clients_itr_summary.xlsx"`)

	if err := export.WriteXLSX(c.Writer, h.store.List()); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render workbook", err)
	}
}
