package handlers

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/repository"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
)

// GenerateQuotationPDF godoc
// @Summary      Generate quotation PDF
// @Description  Renders the current tender as a printable quotation with a fresh reference number.
// @Tags         export
// @Success      200  "PDF file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/quotation/export/pdf [get]
func GenerateQuotationPDF(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleCaser := cases.Title(language.Und)

		items := tender.Items()
		rows := services.BuildQuotationRows(items)
		grandTotal := services.GrandTotal(items)
		reference := repository.GenerateQuotationRef()
		now := time.Now()

		var matched, review, noMatch int
		for _, item := range items {
			switch item.Status {
			case models.StatusMatched:
				matched++
			case models.StatusReview:
				review++
			case models.StatusNoMatch:
				noMatch++
			}
		}

		// --- Generate PDF ---
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)
		pdf.SetFont("Arial", "", 10)

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "QUOTATION")
		pdf.Ln(12)

		// --- Quotation Info ---
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(95, 6, fmt.Sprintf("Reference: %s", reference))
		pdf.Cell(95, 6, fmt.Sprintf("Date: %s", now.Format("02-Jan-2006")))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, fmt.Sprintf("Line Items: %d", len(rows)))
		pdf.Ln(10)

		// --- Table Header ---
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(50, 8, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(15, 8, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(24, 8, "Est. Rate", "1", 0, "C", true, 0, "")
		pdf.CellFormat(24, 8, "Quoted Rate", "1", 0, "C", true, 0, "")
		pdf.CellFormat(14, 8, "Unit", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 8, "Total", "1", 0, "C", true, 0, "")
		pdf.CellFormat(33, 8, "Status", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, row := range rows {
			name := row.TenderItem
			if len(name) > 32 {
				name = name[:29] + "..."
			}

			estRate := "N/A"
			if row.EstimatedRate != nil {
				estRate = fmt.Sprintf("%.2f", *row.EstimatedRate)
			}
			quotedRate := "N/A"
			if row.QuotedRate != nil {
				quotedRate = fmt.Sprintf("%.2f", *row.QuotedRate)
			}
			unit := row.Unit
			if unit == "" {
				unit = "N/A"
			}

			pdf.CellFormat(50, 8, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(15, 8, fmt.Sprintf("%.2f", row.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(24, 8, estRate, "1", 0, "C", false, 0, "")
			pdf.CellFormat(24, 8, quotedRate, "1", 0, "C", false, 0, "")
			pdf.CellFormat(14, 8, unit, "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", row.TotalQuoted), "1", 0, "R", false, 0, "")
			pdf.CellFormat(33, 8, titleCaser.String(row.Status), "1", 1, "C", false, 0, "")
		}

		pdf.Ln(5)

		// --- Totals ---
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(127, 8, "Grand Total")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", grandTotal), "1", 1, "R", false, 0, "")

		// --- Match Summary ---
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Match Summary:")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Matched: %d | Needs Review: %d | No Match: %d", matched, review, noMatch))
		pdf.Ln(6)

		// --- QR Code ---
		qrImg, err := buildQuotationQRImage(reference, now.Format("2006-01-02"), len(items), matched, grandTotal)
		if err != nil {
			log.Printf("Failed to build quotation QR image: %v", err)
		} else {
			var qrBuf bytes.Buffer
			if err := jpeg.Encode(&qrBuf, qrImg, nil); err != nil {
				log.Printf("Failed to encode quotation QR image: %v", err)
			} else {
				if pdf.GetY() > 200 {
					pdf.AddPage()
				}
				opts := gofpdf.ImageOptions{ImageType: "JPEG"}
				pdf.RegisterImageOptionsReader("quotation-qr", opts, &qrBuf)
				pdf.ImageOptions("quotation-qr", 10, pdf.GetY()+6, 40, 0, false, opts, 0, "")
			}
		}

		// --- Footer ---
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "This is a computer-generated quotation. Rates are subject to confirmation.")
		pdf.Ln(5)
		pdf.Cell(190, 6, "Generated on: "+now.Format("2006-01-02 15:04:05"))

		// --- Output PDF ---
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation_%s.pdf", reference))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
