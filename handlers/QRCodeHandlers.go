package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/repository"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

// addLabel adds text to an image at the specified position
func addLabel(img *image.RGBA, x, y int, label string, fontSize float64) {
	col := color.RGBA{0, 0, 0, 255}

	face := inconsolata.Regular8x16
	if fontSize > 16 {
		face = inconsolata.Bold8x16
	}

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// addLabelBold adds bold text for field labels
func addLabelBold(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{30, 30, 30, 255}
	face := inconsolata.Bold8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// buildQuotationQRImage renders the quotation summary QR code with a caption
// block underneath: reference, date, item counts and grand total. The same
// image is served as a JPEG and embedded in the quotation PDF.
func buildQuotationQRImage(reference, date string, itemCount, matchedCount int, grandTotal float64) (*image.RGBA, error) {
	qrData := struct {
		Reference    string  `json:"reference"`
		Date         string  `json:"date"`
		GrandTotal   float64 `json:"grand_total"`
		ItemCount    int     `json:"item_count"`
		MatchedCount int     `json:"matched_count"`
	}{
		Reference:    reference,
		Date:         date,
		GrandTotal:   grandTotal,
		ItemCount:    itemCount,
		MatchedCount: matchedCount,
	}

	jsonData, err := json.Marshal(qrData)
	if err != nil {
		return nil, fmt.Errorf("error marshalling quotation QR data: %v", err)
	}

	qr, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("error generating QR code: %v", err)
	}

	qrImg := qr.Image(512)

	// Combined image: QR on top, summary text below
	qrSize := qrImg.Bounds().Dy()
	padding := 30
	lineHeight := 28
	textAreaHeight := 4*lineHeight + padding
	totalHeight := qrSize + padding + textAreaHeight

	combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
	draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	qrRect := image.Rect(0, 0, qrSize, qrSize)
	draw.Draw(combinedImg, qrRect, qrImg, image.Point{}, draw.Src)

	// Separator line between QR code and text
	separatorY := qrSize + padding/2
	for x := 0; x < qrSize; x++ {
		combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
	}

	startY := qrSize + padding + lineHeight
	xPos := 20

	addLabelBold(combinedImg, xPos, startY, "Reference:")
	addLabel(combinedImg, xPos+120, startY, reference, 16)

	addLabelBold(combinedImg, xPos, startY+lineHeight, "Date:")
	addLabel(combinedImg, xPos+120, startY+lineHeight, date, 16)

	addLabelBold(combinedImg, xPos, startY+2*lineHeight, "Items:")
	addLabel(combinedImg, xPos+120, startY+2*lineHeight,
		fmt.Sprintf("%d (%d matched)", itemCount, matchedCount), 16)

	addLabelBold(combinedImg, xPos, startY+3*lineHeight, "Grand Total:")
	addLabel(combinedImg, xPos+120, startY+3*lineHeight,
		strconv.FormatFloat(grandTotal, 'f', 2, 64), 16)

	return combinedImg, nil
}

// GenerateQuotationQRCode godoc
// @Summary      Generate quotation summary QR code as JPEG
// @Description  Encodes the quotation reference, date, grand total and item count so a printed copy can be checked against the system.
// @Tags         qr
// @Success      200  {file}    file  "JPEG image"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/quotation/qr [get]
func GenerateQuotationQRCode(tender *storage.TenderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := tender.Items()
		grandTotal := services.GrandTotal(items)
		reference := repository.GenerateQuotationRef()

		matchedCount := 0
		for _, item := range items {
			if item.Status == models.StatusMatched {
				matchedCount++
			}
		}

		combinedImg, err := buildQuotationQRImage(
			reference, time.Now().Format("2006-01-02"), len(items), matchedCount, grandTotal)
		if err != nil {
			utils.ErrorResponse(c, "QR code generation failed", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, combinedImg, nil); err != nil {
			utils.ErrorResponse(c, "JPEG encoding failed", http.StatusInternalServerError)
			return
		}

		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
	}
}
