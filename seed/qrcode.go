package seed

import (
	"os"
	"path/filepath"

	"github.com/druglens/druglens/database/model"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRDir  = "static/sample_qr"
	DefaultQRSize = 256
)

// QRCodePNG renders code as a PNG QR image.
func QRCodePNG(code string, size int) ([]byte, error) {
	return qrcode.Encode(code, qrcode.Medium, size)
}

// WriteQRCodes writes <barcode>.png into dir for every medicine with a barcode
// and returns the written paths.
func WriteQRCodes(dir string, meds []model.Medicine) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(meds))
	for _, m := range meds {
		if m.Barcode == "" {
			continue
		}
		p := filepath.Join(dir, m.Barcode+".png")
		if err := qrcode.WriteFile(m.Barcode, qrcode.Medium, DefaultQRSize, p); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
