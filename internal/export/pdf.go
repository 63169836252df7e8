package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// PDF renders a printable itinerary document
func PDF(it *models.Itinerary, destination string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Travel Itinerary - %s", destination), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Travel Itinerary for %s", destination), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, it.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Focus: %s    Total Cost: $%.2f", it.Focus, it.TotalCost), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, it.Description, "", "L", false)
	pdf.Ln(3)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	section("Weather Considerations")
	pdf.MultiCell(0, 5, it.WeatherConsiderations, "", "L", false)
	pdf.Ln(2)

	section("Safety Recommendations")
	pdf.MultiCell(0, 5, it.SafetyRecommendations, "", "L", false)
	pdf.Ln(2)

	section("Flight Options")
	for _, f := range it.FlightOptions {
		pdf.MultiCell(0, 5, fmt.Sprintf("%s - $%.2f (%s, %s)", f.Airline, f.Price, f.Duration, f.Dates), "", "L", false)
	}
	pdf.Ln(2)

	section("Accommodation Options")
	for _, a := range it.AccommodationOptions {
		pdf.MultiCell(0, 5, fmt.Sprintf("%s (%s) - $%.2f/night, total $%.2f, rating %.1f/5, %s",
			a.Name, a.Type, a.PricePerNight, a.TotalPrice, a.Rating, a.Location), "", "L", false)
	}
	pdf.Ln(2)

	section("Daily Itinerary")
	for day := 1; day <= len(it.DailyItinerary); day++ {
		label := models.DayLabel(day)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, strings.ToUpper(label), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, act := range it.DailyItinerary[label] {
			line := fmt.Sprintf("%s-%s: %s ($%.2f, %s)", act.StartTime, act.EndTime, act.Name, act.Cost, act.Location)
			if act.WeatherAlternative != "" {
				line += fmt.Sprintf(" - weather alternative: %s", act.WeatherAlternative)
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}
	pdf.Ln(3)

	section("Unique Selling Point")
	pdf.MultiCell(0, 5, it.UniqueSellingPoint, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
