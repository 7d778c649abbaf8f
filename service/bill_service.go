package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"github.com/Aashish23092/ocr-bill-extraction/client"
	"github.com/Aashish23092/ocr-bill-extraction/dto"
	"github.com/Aashish23092/ocr-bill-extraction/utils"
)

// minEmbeddedTextLen is the threshold below which a PDF is treated as scanned
// and sent through image OCR instead.
const minEmbeddedTextLen = 20

type BillService struct {
	downloadClient  *client.DownloadClient
	tesseractClient *client.TesseractClient
	qrClient        *client.QRClient
	pdfProcessor    PDFProcessor
}

func NewBillService(
	downloadClient *client.DownloadClient,
	tesseractClient *client.TesseractClient,
	qrClient *client.QRClient,
	pdfProcessor PDFProcessor,
) *BillService {
	return &BillService{
		downloadClient:  downloadClient,
		tesseractClient: tesseractClient,
		qrClient:        qrClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ExtractFromURL downloads the bill document, extracts per-page text, and
// runs the parsing pipeline over it. A payment QR found on the bill image is
// attached when present; its absence is never an error.
func (s *BillService) ExtractFromURL(documentURL string) (*dto.BillData, dto.TokenUsage, *dto.PaymentQR, error) {
	content, err := s.downloadClient.Download(documentURL)
	if err != nil {
		return nil, dto.TokenUsage{}, nil, err
	}

	pages, paymentQR, err := s.extractPages(content)
	if err != nil {
		return nil, dto.TokenUsage{}, nil, err
	}

	var allText strings.Builder
	for _, page := range pages {
		allText.WriteString(page.Text)
		allText.WriteString(" ")
	}
	if strings.TrimSpace(allText.String()) == "" {
		return nil, dto.TokenUsage{}, nil, dto.ErrNoTextExtracted
	}

	data, usage := s.ProcessPages(pages)
	return data, usage, paymentQR, nil
}

// ExtractFromText parses raw bill text as a single page, bypassing download
// and OCR entirely.
func (s *BillService) ExtractFromText(text string) (*dto.BillData, dto.TokenUsage) {
	pages := []dto.PageText{{PageNo: 1, Text: text}}
	return s.ProcessPages(pages)
}

// ProcessPages runs the full parsing pipeline: rule-based per-page extraction,
// global deduplication, total validation against the combined text, and item
// categorization. It never fails: zero pages or pages without items yield a
// valid empty result.
func (s *BillService) ProcessPages(pages []dto.PageText) (*dto.BillData, dto.TokenUsage) {
	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		texts = append(texts, page.Text)
	}
	combinedText := strings.Join(texts, " ")

	data := utils.ParseBillText(pages)
	data = utils.Deduplicate(data)

	validation := utils.ValidateTotals(combinedText, utils.SumItemAmounts(data))
	data.Validation = &validation

	utils.CategorizeItems(data)

	return data, utils.EstimateTokenUsage(combinedText)
}

// extractPages turns the raw document bytes into per-page OCR text.
func (s *BillService) extractPages(content []byte) ([]dto.PageText, *dto.PaymentQR, error) {
	fileType := client.DetectFileType(content)
	log.Printf("Detected file type: %s", fileType)

	switch fileType {
	case client.FileTypePDF:
		pages, err := s.extractPDFPages(content)
		return pages, nil, err
	case client.FileTypeJPEG, client.FileTypePNG:
		return s.extractImagePage(content)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: %s", fileType)
	}
}

func (s *BillService) extractPDFPages(content []byte) ([]dto.PageText, error) {
	pages, err := s.pdfProcessor.ExtractPageTexts(content)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}

	var embedded int
	for _, page := range pages {
		embedded += len(strings.TrimSpace(page.Text))
	}
	if embedded >= minEmbeddedTextLen {
		return pages, nil
	}

	// Scanned PDF: OCR each page image instead
	log.Println("PDF appears to be scanned, attempting image-based OCR")

	images, err := s.pdfProcessor.ExtractImages(content)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from scanned PDF: %w", err)
	}

	var ocrPages []dto.PageText
	for i, img := range images {
		text, err := s.ocrImage(img)
		if err != nil {
			log.Printf("OCR failed for page %d: %v", i+1, err)
			continue
		}
		ocrPages = append(ocrPages, dto.PageText{PageNo: i + 1, Text: text})
	}

	return ocrPages, nil
}

func (s *BillService) extractImagePage(content []byte) ([]dto.PageText, *dto.PaymentQR, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var paymentQR *dto.PaymentQR
	if payload, err := s.qrClient.DecodePaymentQR(img); err == nil {
		paymentQR = &dto.PaymentQR{Payload: payload}
	}

	text, err := s.ocrImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("image OCR failed: %w", err)
	}

	return []dto.PageText{{PageNo: 1, Text: text}}, paymentQR, nil
}

func (s *BillService) ocrImage(img image.Image) (string, error) {
	tempFile, err := EnhanceImageForOCR(img)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFile)

	text, conf, err := s.tesseractClient.ExtractTextAndQuality(tempFile)
	if err != nil {
		return "", err
	}

	log.Printf("OCR extracted %d characters (confidence %.1f)", len(text), conf)
	return text, nil
}
