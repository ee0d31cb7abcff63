package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taxmitra/itr-engine/dto"
	"github.com/taxmitra/itr-engine/logger"
	"github.com/taxmitra/itr-engine/service"
	"github.com/taxmitra/itr-engine/store"
)

type ITRHandler struct {
	itrService *service.ITRService
	store      *store.ClientStore
}

func NewITRHandler(itrService *service.ITRService, clientStore *store.ClientStore) *ITRHandler {
	return &ITRHandler{
		itrService: itrService,
		store:      clientStore,
	}
}

// NormalizeITR handles POST /itr/normalize. Accepts a JSON return or an
// acknowledgment PDF as the "file" form field.
func (h *ITRHandler) NormalizeITR(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to open upload", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to read upload", err)
		return
	}

	logger.Log.Info("processing uploaded return",
		zap.String("filename", fileHeader.Filename),
		zap.Int("size", len(data)))

	var summary *dto.ClientSummary
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) == ".pdf" {
		summary, err = h.itrService.NormalizePDF(data)
	} else {
		summary, err = h.itrService.NormalizeJSON(data)
	}
	if err != nil {
		if errors.Is(err, dto.ErrMalformedDocument) {
			sendError(c, http.StatusBadRequest, "Document could not be parsed", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to normalize document", err)
		return
	}

	h.store.Save(summary)
	c.JSON(http.StatusOK, summary)
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logger.Log.Error(message, zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "REQUEST_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
