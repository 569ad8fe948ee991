package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/druglens/druglens/caching"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrPNG(t *testing.T, content string) []byte {
	t.Helper()
	data, err := qrcode.Encode(content, qrcode.Medium, 256)
	require.NoError(t, err)
	return data
}

func blankPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = color.White.Y
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ean13Image renders digits as an EAN-13 barcode.
func ean13Image(t *testing.T, digits string) image.Image {
	t.Helper()
	img, err := oned.NewEAN13Writer().Encode(digits, gozxing.BarcodeFormat_EAN_13, 300, 100, nil)
	require.NoError(t, err)
	return img
}

// hugePNG returns a 1x1 PNG whose header claims width x height.
func hugePNG(t *testing.T, width, height uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	data := buf.Bytes()
	// signature(8) | length(4) | "IHDR" | width | height | ... | crc at 29
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestZXingDecoderConcurrent(t *testing.T) {
	qrImg, err := png.Decode(bytes.NewReader(qrPNG(t, "QR0005")))
	require.NoError(t, err)
	eanImg := ean13Image(t, "4006381333931")

	decoder := NewZXingDecoder()
	code, err := decoder.Decode(eanImg)
	require.NoError(t, err)
	require.Equal(t, "4006381333931", code)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			img, want := qrImg, "QR0005"
			if i%2 == 1 {
				img, want = eanImg, "4006381333931"
			}
			for j := 0; j < 5; j++ {
				got, err := decoder.Decode(img)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}(i)
	}
	wg.Wait()
}

func TestScanRejectsOversizedImage(t *testing.T) {
	setup(t)
	u := addUser(t, "alice@example.com")
	scanService := NewScanService(true, NewZXingDecoder(), failingTranslator{}, "hi")

	_, err := scanService.Scan(context.Background(), u.Id, bytes.NewReader(hugePNG(t, 30000, 30000)))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = decodeImage(bytes.NewReader(hugePNG(t, 4097, 4096)))
	assert.ErrorContains(t, err, "exceeds the size limit")
}

func TestScanKnownBarcode(t *testing.T) {
	setup(t)
	u := addUser(t, "alice@example.com")
	m := addMedicine(t, "Paracetamol", "QR0001")

	var calls int32
	srv := newTranslateServer(t, &calls)
	c := caching.NewCache()
	require.NoError(t, c.Init())
	scanService := NewScanService(true, NewZXingDecoder(), NewTranslateService(srv.URL, time.Second, c), "hi")

	result, err := scanService.Scan(context.Background(), u.Id, bytes.NewReader(qrPNG(t, "QR0001")))
	require.NoError(t, err)
	assert.Equal(t, "QR0001", result.Code)
	require.NotNil(t, result.Medicine)
	assert.Equal(t, m.Id, result.Medicine.Id)

	require.NotNil(t, result.Translated)
	assert.Equal(t, "[hi] Paracetamol description", result.Translated.Description)
	assert.Equal(t, "[hi] 10mg once daily", result.Translated.Dosage)
	assert.Equal(t, "[hi] Headache", result.Translated.SideEffects)
	assert.Equal(t, "[hi] Alcohol", result.Translated.Interactions)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))

	historyService := HistoryService{}
	records, err := historyService.GetUserHistory(u.Id)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Paracetamol", records[0].Name)
}

func TestScanUnknownBarcode(t *testing.T) {
	setup(t)
	u := addUser(t, "alice@example.com")
	addMedicine(t, "Paracetamol", "QR0001")
	scanService := NewScanService(true, NewZXingDecoder(), failingTranslator{}, "hi")

	result, err := scanService.Scan(context.Background(), u.Id, bytes.NewReader(qrPNG(t, "QR4242")))
	require.NoError(t, err)
	assert.Equal(t, "QR4242", result.Code)
	assert.Nil(t, result.Medicine)
	assert.Nil(t, result.Translated)

	historyService := HistoryService{}
	count, err := historyService.CountUserHistory(u.Id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScanErrors(t *testing.T) {
	setup(t)
	u := addUser(t, "alice@example.com")

	disabled := NewScanService(false, NewZXingDecoder(), failingTranslator{}, "hi")
	assert.False(t, disabled.Enabled())
	_, err := disabled.Scan(context.Background(), u.Id, bytes.NewReader(qrPNG(t, "QR0001")))
	assert.ErrorIs(t, err, ErrScanDisabled)

	scanService := NewScanService(true, NewZXingDecoder(), failingTranslator{}, "hi")
	_, err = scanService.Scan(context.Background(), u.Id, strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = scanService.Scan(context.Background(), u.Id, bytes.NewReader(blankPNG(t)))
	assert.ErrorIs(t, err, ErrNoBarcode)
}
