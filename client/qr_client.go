package client

import (
	"fmt"
	"image"
	"log"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRClient decodes payment QR codes printed on bill images (UPI strings,
// payment links). Detection is best-effort: most bills carry no QR at all.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodePaymentQR scans the image for a QR code and returns its raw payload.
// A missing or undecodable QR is reported as an error so the caller can treat
// it as an absent, optional field.
func (qc *QRClient) DecodePaymentQR(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()

	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	payload := result.GetText()
	log.Printf("Payment QR decoded, length: %d bytes", len(payload))
	return payload, nil
}
