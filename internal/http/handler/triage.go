package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/extract"
	"mailroom.app/triage/internal/http/dto"
)

// Classifier is the triage pipeline entrypoint consumed by the HTTP layer.
type Classifier interface {
	Classify(ctx context.Context, rawText string) domain.ClassificationResult
}

type TriageHandler struct {
	classifier Classifier
}

func NewTriageHandler(classifier Classifier) *TriageHandler {
	return &TriageHandler{classifier: classifier}
}

// ProcessText classifies a plain-text email body.
func (h *TriageHandler) ProcessText(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid classify request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.classifier.Classify(ctx, req.Text)
	c.JSON(http.StatusOK, dto.ClassifyResponse{
		Category: string(result.Category),
		Response: result.Response,
	})
}

// UploadFile extracts text from an uploaded .txt or .pdf document and feeds
// it through the same classification path.
func (h *TriageHandler) UploadFile(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.WarnContext(ctx, "invalid upload request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.ErrorContext(ctx, "failed to open upload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read upload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	content, err := extract.FromUpload(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to extract document text",
			"filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to extract text from file"})
		return
	}

	result := h.classifier.Classify(ctx, content)
	c.JSON(http.StatusOK, dto.ClassifyResponse{
		Category: string(result.Category),
		Response: result.Response,
	})
}
