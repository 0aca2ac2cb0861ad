package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"automentor/backend/internal/features/generation/application"
	"automentor/backend/internal/features/generation/domain"
)

// GenerationHandler holds the generation service.
type GenerationHandler struct {
	generationService application.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService application.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// Request bodies. Numeric bounds are enforced by the domain builder, not by
// binding tags, so the violated constraint is named consistently in one
// place.

type startupIdeaRequest struct {
	Skills    string `json:"skills" binding:"required"`
	Interests string `json:"interests" binding:"required"`
}

type taglineRequest struct {
	Concept string `json:"concept" binding:"required"`
}

type descriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

type ideaRequest struct {
	Idea string `json:"idea" binding:"required"`
}

type brainstormNamesRequest struct {
	Description string   `json:"description" binding:"required"`
	Temperature *float64 `json:"temperature"`
}

type marketingAnglesRequest struct {
	Description string   `json:"description" binding:"required"`
	TopP        *float64 `json:"top_p"`
}

type faqRequest struct {
	Description string `json:"description" binding:"required"`
	TopK        *int   `json:"top_k"`
}

type validateIdeaWithTokensResponse struct {
	ValidationAnalysis string             `json:"validation_analysis"`
	TokenUsage         *domain.TokenUsage `json:"token_usage,omitempty"`
}

// GenerateStartupIdeaHandler handles the structured-output demonstration.
func (h *GenerationHandler) GenerateStartupIdeaHandler(c *gin.Context) {
	var req startupIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.generationService.GenerateStartupIdea(c.Request.Context(), req.Skills, req.Interests)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// GenerateTaglineHandler handles the zero-shot demonstration.
func (h *GenerationHandler) GenerateTaglineHandler(c *gin.Context) {
	var req taglineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tagline, err := h.generationService.GenerateTagline(c.Request.Context(), req.Concept)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tagline": tagline})
}

// GenerateHeadlineHandler handles the one-shot demonstration.
func (h *GenerationHandler) GenerateHeadlineHandler(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headline, err := h.generationService.GenerateHeadline(c.Request.Context(), req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"headline": headline})
}

// GenerateFeaturesHandler handles the multi-shot demonstration.
func (h *GenerationHandler) GenerateFeaturesHandler(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	features, err := h.generationService.GenerateFeatures(c.Request.Context(), req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features})
}

// ValidateIdeaHandler handles the chain-of-thought demonstration.
func (h *GenerationHandler) ValidateIdeaHandler(c *gin.Context) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.generationService.ValidateIdea(c.Request.Context(), req.Idea)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"validation_analysis": analysis})
}

// ValidateIdeaWithTokensHandler handles the token-usage demonstration.
// token_usage is omitted entirely when the backend reported no counts.
func (h *GenerationHandler) ValidateIdeaWithTokensHandler(c *gin.Context) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, usage, err := h.generationService.ValidateIdeaWithTokens(c.Request.Context(), req.Idea)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, validateIdeaWithTokensResponse{ValidationAnalysis: analysis, TokenUsage: usage})
}

// BrainstormNamesHandler handles the temperature demonstration.
func (h *GenerationHandler) BrainstormNamesHandler(c *gin.Context) {
	var req brainstormNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	names, used, err := h.generationService.BrainstormNames(c.Request.Context(), req.Description, req.Temperature)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"startup_names": names, "temperature_used": used})
}

// GenerateMarketingAnglesHandler handles the top-p demonstration.
func (h *GenerationHandler) GenerateMarketingAnglesHandler(c *gin.Context) {
	var req marketingAnglesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	angles, used, err := h.generationService.GenerateMarketingAngles(c.Request.Context(), req.Description, req.TopP)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marketing_angles": angles, "top_p_used": used})
}

// GenerateFAQHandler handles the top-k demonstration.
func (h *GenerationHandler) GenerateFAQHandler(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, used, err := h.generationService.GenerateFAQ(c.Request.Context(), req.Description, req.TopK)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faq": faq, "top_k_used": used})
}

// GenerateFirstStepHandler handles the stop-sequence demonstration.
func (h *GenerationHandler) GenerateFirstStepHandler(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	firstStep, err := h.generationService.GenerateFirstStep(c.Request.Context(), req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"first_step": firstStep})
}

// writeError maps a pipeline error onto an HTTP status.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrOutputSchemaViolation):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
