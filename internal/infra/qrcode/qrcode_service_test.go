package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"booknow/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"high", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "medium"}})

	pngBytes, err := svc.GenerateReferralQR("https://booknow.example/join?ref=BNAB12CD")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_SizeIsClamped(t *testing.T) {
	assert.Equal(t, minSize, newQRCodeService(1, "M").size)
	assert.Equal(t, maxSize, newQRCodeService(100000, "M").size)
	assert.Equal(t, 256, NewQRCodeService(&config.Config{}).(*qrcodeService).size)
}

func TestQRCodeService_EmptyLink(t *testing.T) {
	svc := newQRCodeService(256, "M")

	_, err := svc.GenerateReferralQR("  ")
	assert.Error(t, err)
}
