package handlers

import (
	"log"
	"net/http"

	"atlasmind/services"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler serves itinerary generation and its derived views.
type ItineraryHandler struct {
	synth *services.Synthesizer
}

func NewItineraryHandler(synth *services.Synthesizer) *ItineraryHandler {
	return &ItineraryHandler{synth: synth}
}

type GenerateRequest struct {
	City                string   `json:"city" binding:"required"`
	Budget              int      `json:"budget" binding:"required,gt=0"`
	Days                int      `json:"days" binding:"required,gte=1,lte=30"`
	Interests           []string `json:"interests"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	TravelStyle         string   `json:"travel_style"`
	GroupSize           int      `json:"group_size"`
}

// GenerateResponse carries the synthesized document plus the budget the
// caller actually asked for. The document's own budget figures are the
// product's demo-stub constants, so the requested budget is echoed
// separately rather than silently merged into them.
type GenerateResponse struct {
	services.Itinerary
	RequestedBudget int                     `json:"requested_budget"`
	BudgetOverview  services.BudgetOverview `json:"budget_overview"`
}

func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it := h.synth.Synthesize(req.City)
	log.Printf("✅ Generated %d-day itinerary %s for %q", it.DayCount, it.ID, it.City)

	c.JSON(http.StatusOK, GenerateResponse{
		Itinerary:       it,
		RequestedBudget: req.Budget,
		BudgetOverview:  services.BuildBudgetOverview(it),
	})
}

// Recommendations returns just the travel tips for a city.
func (h *ItineraryHandler) Recommendations(c *gin.Context) {
	city := c.Param("city")
	it := h.synth.Synthesize(city)

	c.JSON(http.StatusOK, gin.H{
		"city":            it.City,
		"recommendations": it.Recommendations,
	})
}

type BudgetBreakdownRequest struct {
	Itinerary   services.Itinerary `json:"itinerary" binding:"required"`
	TotalBudget int                `json:"total_budget" binding:"required,gt=0"`
}

// BudgetBreakdown computes real sums over the document's activity and
// dining costs, unlike the stub totals the document itself carries.
func (h *ItineraryHandler) BudgetBreakdown(c *gin.Context) {
	var req BudgetBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.Itinerary.Days) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Itinerary has no days"})
		return
	}

	c.JSON(http.StatusOK, services.ComputeBudgetBreakdown(req.Itinerary, req.TotalBudget))
}

// ExportPDF renders a posted itinerary document to PDF. There is no
// server-side itinerary store, so the document travels in the request.
func (h *ItineraryHandler) ExportPDF(c *gin.Context) {
	var it services.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid itinerary: " + err.Error()})
		return
	}
	if it.City == "" || len(it.Days) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Itinerary must have a city and at least one day"})
		return
	}

	pdfBytes, err := services.RenderItineraryPDF(it)
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=atlasmind-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
