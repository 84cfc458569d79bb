// README: Travel plan generation and examples listing handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/travelplan"
	"voyage/internal/service"
)

type PlanGenerator interface {
	GeneratePlan(ctx context.Context, c travelplan.Criteria) (*service.GeneratedPlan, error)
}

type ExampleLister interface {
	ListExamples(ctx context.Context, f travelplan.ExampleFilter) (*travelplan.ExamplePage, error)
}

type PlanHandler struct {
	plans    PlanGenerator
	examples ExampleLister
}

func NewPlanHandler(plans PlanGenerator, examples ExampleLister) *PlanHandler {
	return &PlanHandler{plans: plans, examples: examples}
}

// Generate handles POST /api/generate-plan. A freshly generated plan is 201,
// a reused one 200.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req travelplan.Criteria
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	out, err := h.plans.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if out.FromCache {
		status = http.StatusOK
	}
	writeData(c, status, out)
}

// Examples handles GET /api/examples.
func (h *PlanHandler) Examples(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		writeError(c, http.StatusBadRequest, KindValidation, "limit must be an integer")
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		writeError(c, http.StatusBadRequest, KindValidation, "offset must be an integer")
		return
	}
	page, err := h.examples.ListExamples(c.Request.Context(), travelplan.ExampleFilter{
		DestinationID: c.Query("destinationId"),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, page)
}
