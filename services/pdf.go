package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderItineraryPDF renders the document to PDF bytes (no filesystem — the
// handler streams the buffer straight to the client).
func RenderItineraryPDF(it Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "AtlasMind", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 231, 221)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, fmt.Sprintf("%d-Day %s Itinerary", it.DayCount, it.City), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", it.City)
	row("Duration", fmt.Sprintf("%d days", it.DayCount))
	row("Generated", it.GeneratedAt.Format("02 Jan 2006, 15:04 UTC"))
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(170, 5, it.Summary, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Budget Overview ───────────────────────────────────────
	overview := BuildBudgetOverview(it)
	sectionHeader("Budget Overview")
	row("Budget", fmt.Sprintf("Rs. %d", it.TotalBudget))
	row("Total Cost", fmt.Sprintf("Rs. %d", overview.TotalCost))
	row("Savings", fmt.Sprintf("Rs. %d", overview.Savings))
	row("Per Day", fmt.Sprintf("Rs. %d", overview.PerDayCost))
	pdf.Ln(4)

	// ── Recommendations ───────────────────────────────────────
	if len(it.Recommendations) > 0 {
		sectionHeader("Travel Tips")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, rec := range it.Recommendations {
			pdf.MultiCell(170, 5, "- "+rec, "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	// ── Daily Plans ───────────────────────────────────────────
	for _, day := range it.Days {
		sectionHeader(fmt.Sprintf("Day %d — %s", day.Day, day.Summary))

		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 6, fmt.Sprintf("%s — %s", a.Time, a.Place), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(80, 80, 80)
			pdf.MultiCell(170, 4.5, a.Description, "", "L", false)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(170, 5, fmt.Sprintf("%d min · Rs. %d · %s", a.DurationMinutes, a.Cost, a.Category), "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}

		for _, d := range day.Dining {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 6, fmt.Sprintf("Dining: %s (%s)", d.Name, d.Cuisine), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(80, 80, 80)
			pdf.MultiCell(170, 4.5, d.Description, "", "L", false)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(170, 5, fmt.Sprintf("Rs. %d per person", d.PricePerPerson), "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by AtlasMind Travel Planner · Sample itinerary · Prices are estimates",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
