// README: SEO page and admin free-form content handlers.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/http/middleware"
	"voyage/internal/service"
	"voyage/internal/types"
)

type ContentGenerator interface {
	GenerateCustom(ctx context.Context, req service.CustomRequest) (*service.CustomResult, error)
	GenerateSEOPage(ctx context.Context, req service.SEORequest) (*service.SEOResult, error)
}

type ContentHandler struct {
	content ContentGenerator
}

func NewContentHandler(content ContentGenerator) *ContentHandler {
	return &ContentHandler{content: content}
}

type seoPageReq struct {
	TravelPlanID string `json:"travelPlanId"`
	Slug         string `json:"slug"`
	Save         bool   `json:"save"`
}

// SEOPage handles POST /api/seo-page.
func (h *ContentHandler) SEOPage(c *gin.Context) {
	var req seoPageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	out, err := h.content.GenerateSEOPage(c.Request.Context(), service.SEORequest{
		TravelPlanID: types.ID(req.TravelPlanID),
		Slug:         req.Slug,
		Save:         req.Save,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}

type customContentReq struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt"`
	SaveForSEO   bool   `json:"saveForSeo"`
	SEOTitle     string `json:"seoTitle"`
	SEOSlug      string `json:"seoSlug"`
}

// Custom handles POST /api/ai-configurable. Requires AdminAuth.
func (h *ContentHandler) Custom(c *gin.Context) {
	var req customContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	if a := middleware.CallerAdmin(c); a != nil {
		slog.InfoContext(c.Request.Context(), "ai configurable request from admin", "adminId", a.ID)
	}
	out, err := h.content.GenerateCustom(c.Request.Context(), service.CustomRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		SaveForSEO:   req.SaveForSEO,
		SEOTitle:     req.SEOTitle,
		SEOSlug:      req.SEOSlug,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}
