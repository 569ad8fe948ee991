package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/druglens/druglens/database/model"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/common"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

const (
	maxImageBytes  = 10 << 20
	maxImagePixels = 4096 * 4096
)

// BarcodeDecoder extracts the text encoded in a barcode or QR code image.
type BarcodeDecoder interface {
	Decode(img image.Image) (string, error)
}

// ZXingDecoder tries QR, EAN-13, EAN-8, Code 128 and Code 39 in that order and
// returns the first hit. It is safe for concurrent use.
type ZXingDecoder struct {
	hints map[gozxing.DecodeHintType]any
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		hints: map[gozxing.DecodeHintType]any{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// newReaders builds fresh readers; gozxing readers keep per-decode state.
func newReaders() []gozxing.Reader {
	return []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		oned.NewEAN13Reader(),
		oned.NewEAN8Reader(),
		oned.NewCode128Reader(),
		oned.NewCode39Reader(),
	}
}

func (d *ZXingDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	for _, r := range newReaders() {
		result, err := r.Decode(bmp, d.hints)
		if err == nil && result.GetText() != "" {
			return result.GetText(), nil
		}
	}
	return "", ErrNoBarcode
}

// decodeImage reads at most maxImageBytes and rejects images whose declared
// size exceeds maxImagePixels before any pixel buffer is allocated.
func decodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes))
	if err != nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, common.NewErrorf("%s image of %dx%d exceeds the size limit", format, cfg.Width, cfg.Height)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// ScanResult is the outcome of a scan. Code is set whenever something was
// decoded; Medicine and Translated only on a database hit.
type ScanResult struct {
	Code       string
	Medicine   *model.Medicine
	Translated *TranslatedFields
}

type ScanService struct {
	enabled         bool
	decoder         BarcodeDecoder
	translator      Translator
	target          string
	medicineService MedicineService
	historyService  HistoryService
}

func NewScanService(enabled bool, decoder BarcodeDecoder, translator Translator, target string) *ScanService {
	return &ScanService{
		enabled:    enabled,
		decoder:    decoder,
		translator: translator,
		target:     target,
	}
}

func (s *ScanService) Enabled() bool {
	return s.enabled
}

// Scan decodes the uploaded image, looks the code up and, on a hit, records
// history for userId and translates the medicine's text fields.
func (s *ScanService) Scan(ctx context.Context, userId int, r io.Reader) (*ScanResult, error) {
	if !s.enabled {
		return nil, ErrScanDisabled
	}
	img, err := decodeImage(r)
	if err != nil {
		logger.Debug("scan: image decode failed:", err)
		return nil, ErrUnsupportedImage
	}

	code, err := s.decoder.Decode(img)
	if err != nil {
		if errors.Is(err, ErrNoBarcode) {
			return nil, ErrNoBarcode
		}
		logger.Warning("scan: barcode decode failed:", err)
		return nil, ErrNoBarcode
	}
	logger.Debugf("scan: decoded %q for user %d", code, userId)

	result := &ScanResult{Code: code}
	m, err := s.medicineService.FindByBarcode(code)
	if errors.Is(err, ErrMedicineNotFound) {
		return result, nil
	} else if err != nil {
		return nil, err
	}
	if err := s.historyService.Record(userId, m.Id); err != nil {
		return nil, err
	}
	result.Medicine = m
	result.Translated = TranslateMedicine(ctx, s.translator, m, s.target)
	return result, nil
}
