package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
	"github.com/Aashish23092/ocr-bill-extraction/service"
)

type BillHandler struct {
	billService *service.BillService
}

func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{
		billService: billService,
	}
}

// ExtractBillData handles the POST /extract-bill-data endpoint
func (h *BillHandler) ExtractBillData(c *gin.Context) {
	log.Println("Received bill extraction request")

	var request dto.BillExtractionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendFailure(c, http.StatusBadRequest, dto.ErrMissingDocument.Error())
		return
	}

	if err := request.Validate(); err != nil {
		h.sendFailure(c, http.StatusBadRequest, err.Error())
		return
	}

	data, usage, paymentQR, err := h.billService.ExtractFromURL(request.Document)
	if err != nil {
		status := http.StatusInternalServerError
		if err == dto.ErrNoTextExtracted {
			status = http.StatusBadRequest
		}
		log.Printf("Bill extraction failed: %v", err)
		h.sendFailure(c, status, err.Error())
		return
	}

	log.Printf("Bill extraction completed: %d items", data.TotalItemCount)
	c.JSON(http.StatusOK, dto.BillExtractionResponse{
		IsSuccess:  true,
		TokenUsage: usage,
		Data:       data,
		PaymentQR:  paymentQR,
	})
}

// ExtractFromText handles the POST /test-text endpoint, parsing raw bill text
// as a single page without download or OCR.
func (h *BillHandler) ExtractFromText(c *gin.Context) {
	var request dto.TextExtractionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendFailure(c, http.StatusBadRequest, "missing 'text' in request body")
		return
	}

	if err := request.Validate(); err != nil {
		h.sendFailure(c, http.StatusBadRequest, err.Error())
		return
	}

	data, usage := h.billService.ExtractFromText(request.Text)

	c.JSON(http.StatusOK, dto.BillExtractionResponse{
		IsSuccess:  true,
		TokenUsage: usage,
		Data:       data,
	})
}

// sendFailure sends the failure envelope with an empty token usage block
func (h *BillHandler) sendFailure(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.BillExtractionResponse{
		IsSuccess:  false,
		TokenUsage: dto.TokenUsage{},
		Error:      message,
	})
}
