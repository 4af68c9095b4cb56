// Package rembg talks to a background-removal service. The pipeline
// treats it as an oracle: photo in, foreground cutout back, alpha channel
// used as the mask.
package rembg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Remover produces a foreground/background cutout for a photo.
type Remover interface {
	Remove(ctx context.Context, img image.Image) (image.Image, error)
}

// Client calls a rembg-compatible HTTP endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL (e.g.
// "http://localhost:7000"). Background removal on a full-size photo can
// take a while, hence the generous timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Remove implements Remover. The photo is uploaded as PNG and the
// service's cutout (normally RGBA with the background fully transparent)
// is decoded and returned.
func (c *Client) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "photo.png")
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if err := png.Encode(part, img); err != nil {
		return nil, fmt.Errorf("encoding photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/remove", &body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("background removal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("background removal: status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	cutout, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding cutout: %w", err)
	}
	return cutout, nil
}

// MaskFromCutout extracts the foreground mask from a cutout image: the
// alpha channel when one is present, otherwise a grayscale fallback.
func MaskFromCutout(cutout image.Image) *image.Gray {
	bounds := cutout.Bounds()
	mask := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Alpha channel when the cutout carries one (the normal case),
	// grayscale fallback otherwise.
	useAlpha := false
	switch cutout.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		useAlpha = true
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := cutout.At(x, y)
			var v uint8
			if useAlpha {
				_, _, _, a := px.RGBA()
				v = uint8(a >> 8)
			} else {
				v = color.GrayModel.Convert(px).(color.Gray).Y
			}
			mask.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: v})
		}
	}
	return mask
}
