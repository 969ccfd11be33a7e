package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodedSize(t *testing.T, dataURL string) (int, int) {
	t.Helper()
	mime, raw, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", mime)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		preset       Preset
		wantW, wantH int
	}{
		{"wide attachment scaled", 1600, 900, AttachmentPreset, 800, 450},
		{"narrow attachment kept", 300, 200, AttachmentPreset, 300, 200},
		{"profile scaled", 800, 800, ProfilePreset, 400, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := EncodeDataURL(pngBytes(t, tt.w, tt.h))
			if !strings.HasPrefix(in, "data:image/png;base64,") {
				t.Fatalf("EncodeDataURL() = %q", in[:30])
			}
			out := Compress(context.Background(), in, tt.preset)
			w, h := decodedSize(t, out)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCompressFailureReturnsInput(t *testing.T) {
	inputs := []string{
		"not a data url",
		"data:image/png;base64,!!!",
		"data:text/plain;base64,aGVsbG8=",
	}
	for _, in := range inputs {
		if got := Compress(context.Background(), in, AttachmentPreset); got != in {
			t.Errorf("Compress(%q) = %q, want input unchanged", in, got)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := EncodeDataURL(pngBytes(t, 10, 10))
	if got := Compress(ctx, in, AttachmentPreset); got != in {
		t.Error("cancelled context should return input unchanged")
	}
}

func TestPrepareRejectsLargeInput(t *testing.T) {
	raw := make([]byte, constants.MaxImageBytes+1)
	_, err := Prepare(context.Background(), raw, AttachmentPreset)
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "image" {
		t.Errorf("Prepare() error = %v", err)
	}
}
