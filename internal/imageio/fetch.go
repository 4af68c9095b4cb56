// Package imageio handles image acquisition, conversion between Go images
// and OpenCV Mats, and the on-disk mask cache.
package imageio

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// Fetch downloads an image by URL and decodes it, honoring EXIF
// orientation. Any failure here is fatal for the run.
func Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading image: unexpected status %s", resp.Status)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// LoadFile reads and decodes a local image file, honoring EXIF
// orientation.
func LoadFile(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return img, nil
}
