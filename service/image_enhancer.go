package service

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// EnhanceImageForOCR preprocesses a bill image for better OCR results and
// writes it to a temporary PNG file. The caller removes the file when done.
func EnhanceImageForOCR(src image.Image) (string, error) {
	// Grayscale for contrast, then boost and sharpen to make faint print legible
	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.0)

	tempFile, err := os.CreateTemp("", "bill-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	tempFile.Close()

	if err := imaging.Save(img, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to save processed image: %w", err)
	}

	return tempFile.Name(), nil
}
