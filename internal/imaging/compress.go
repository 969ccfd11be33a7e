// Package imaging handles the images attached to a report and the profile
// picture: data URL encoding, best-effort compression and the in-progress
// attachment buffer.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/logger"
)

// Preset is a target width and JPEG quality.
type Preset struct {
	MaxWidth int
	Quality  int
}

var (
	AttachmentPreset = Preset{MaxWidth: constants.AttachmentMaxWidth, Quality: constants.AttachmentQuality}
	ProfilePreset    = Preset{MaxWidth: constants.ProfileImageMaxWidth, Quality: constants.ProfileImageQuality}
)

// EncodeDataURL wraps raw image bytes in a data URL, sniffing the media type.
func EncodeDataURL(raw []byte) string {
	mime := http.DetectContentType(raw)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// DecodeDataURL returns the media type and payload of a base64 data URL.
func DecodeDataURL(u string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URL: %w", err)
	}
	return mime, raw, nil
}

// CheckSize rejects images over the input limit before any decoding.
func CheckSize(raw []byte) error {
	if len(raw) > constants.MaxImageBytes {
		return &apperrors.ValidationError{Field: "image", Message: "file must not exceed 2MB"}
	}
	return nil
}

// Compress re-encodes the data URL as JPEG, scaled down to the preset width
// when wider. Any failure returns the input unchanged.
func Compress(ctx context.Context, dataURL string, p Preset) string {
	if err := ctx.Err(); err != nil {
		return dataURL
	}
	out, err := compress(ctx, dataURL, p)
	if err != nil {
		logger.Debug("image compression skipped", "error", err)
		return dataURL
	}
	return out
}

func compress(ctx context.Context, dataURL string, p Preset) (string, error) {
	_, raw, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > p.MaxWidth {
		h = h * p.MaxWidth / w
		w = p.MaxWidth
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.Quality}); err != nil {
		return "", fmt.Errorf("encoding jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Prepare validates, encodes and compresses a raw image in one step.
func Prepare(ctx context.Context, raw []byte, p Preset) (string, error) {
	if err := CheckSize(raw); err != nil {
		return "", err
	}
	return Compress(ctx, EncodeDataURL(raw), p), nil
}
