package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tnso721607-maker/tenderquote3/storage"
)

func TestGenerateQuotationQRCode_WritesJPEG(t *testing.T) {
	tender := storage.NewTenderStore()
	tender.Replace(quotationExportItems(true))

	r := gin.New()
	r.GET("/api/quotation/qr", GenerateQuotationQRCode(tender))
	w := doJSON(t, r, http.MethodGet, "/api/quotation/qr", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Expected image/jpeg, got %q", ct)
	}
	if body := w.Body.Bytes(); len(body) < 2 || body[0] != 0xFF || body[1] != 0xD8 {
		t.Error("Expected JPEG magic at start of body")
	}
}

func TestBuildQuotationQRImage_HasCaptionArea(t *testing.T) {
	img, err := buildQuotationQRImage("QT-KR48213", "2026-08-25", 5, 3, 582060)
	if err != nil {
		t.Fatalf("Expected image, got error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 512 {
		t.Errorf("Expected 512px wide image, got %d", bounds.Dx())
	}
	// The caption block sits below the square QR code.
	if bounds.Dy() <= bounds.Dx() {
		t.Errorf("Expected caption area below the QR code, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
