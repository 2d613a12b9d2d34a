package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// KioskQR writes a PNG QR code pointing a tablet at its kiosk URL and
// returns the written filename.
func KioskQR(baseURL, tabletID, dir string) (string, error) {
	url := fmt.Sprintf("%s/kiosk?tablet_id=%s", baseURL, tabletID)

	fileName := fmt.Sprintf("%s/kiosk_%s.png", dir, tabletID)
	if err := qrcode.WriteFile(url, qrcode.Medium, 256, fileName); err != nil {
		return "", fmt.Errorf("error generating qr code: %w", err)
	}

	return fileName, nil
}
