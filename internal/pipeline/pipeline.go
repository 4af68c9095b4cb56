// Package pipeline sequences the full extraction run: acquire the photo,
// obtain the foreground mask (cache or background-removal service),
// segment it into per-person contours, normalize the geometry, and write
// the output document.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"silhouette-tracer/internal/boundary"
	"silhouette-tracer/internal/imageio"
	"silhouette-tracer/internal/manifest"
	"silhouette-tracer/internal/outline"
	"silhouette-tracer/internal/rembg"
	"silhouette-tracer/internal/segment"

	"gocv.io/x/gocv"
)

// Config holds one run's inputs, outputs, and tunables. Exactly one of
// ImageURL and ImagePath must be set.
type Config struct {
	ImageURL  string
	ImagePath string

	// PhotoID identifies the photo in the output document.
	PhotoID string

	// OutputPath is where the JSON document is written.
	OutputPath string

	// MaskCachePath, when set, is checked before calling the remover and
	// written after a successful removal.
	MaskCachePath string

	// DebugDir, when set, receives region masks and the contour overlay.
	DebugDir string

	// Roster assigns identity metadata to contours in left-to-right
	// order.
	Roster []manifest.PersonMeta

	// Segment carries all segmentation tunables.
	Segment segment.Params

	// Outline carries the name-tag and hit-area placement tunables.
	Outline outline.Params
}

// DefaultConfig returns a config with the reference photo's roster and
// default tunables. Callers fill in paths and the image source.
func DefaultConfig() Config {
	return Config{
		OutputPath: filepath.Join("data", "contours.json"),
		Roster:     manifest.DefaultRoster(),
		Segment:    segment.DefaultParams(),
		Outline:    outline.DefaultParams(),
	}
}

// Pipeline runs the extraction end to end. It is single-shot and
// synchronous; a failure before segmentation aborts the run, anything
// after degrades to warnings.
type Pipeline struct {
	cfg     Config
	remover rembg.Remover
}

// New builds a pipeline with the given config and background-removal
// collaborator.
func New(cfg Config, remover rembg.Remover) *Pipeline {
	return &Pipeline{cfg: cfg, remover: remover}
}

// Run executes one extraction pass and returns the written document plus
// any soft-failure warnings.
func (p *Pipeline) Run(ctx context.Context) (*manifest.Document, []string, error) {
	img, err := p.acquire(ctx)
	if err != nil {
		return nil, nil, err
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	log.Printf("photo %s: %dx%d", p.cfg.PhotoID, width, height)

	mat := imageio.ImageToMat(img)
	defer mat.Close()

	mask, err := p.foregroundMask(ctx, img)
	if err != nil {
		return nil, nil, err
	}
	defer mask.Close()

	strategy := boundary.NewCombinedStrategy(p.cfg.Segment.Boundary)
	result, err := segment.Segment(mat, mask, strategy, p.cfg.Segment)
	if err != nil {
		return nil, nil, fmt.Errorf("segmentation: %w", err)
	}

	warnings := append([]string(nil), result.Warnings...)

	expected := len(p.cfg.Roster)
	if len(result.Contours) != expected {
		msg := fmt.Sprintf("found %d contours, expected %d; output needs manual review", len(result.Contours), expected)
		warnings = append(warnings, msg)
		log.Printf("warning: %s", msg)
	}

	if p.cfg.DebugDir != "" {
		p.writeDebugArtifacts(mat, mask, result)
	}

	doc := &manifest.Document{PhotoID: p.cfg.PhotoID}
	for i, c := range result.Contours {
		meta := manifest.MetaFor(p.cfg.Roster, i)
		doc.Members = append(doc.Members, manifest.Member{
			ID:            meta.ID,
			Name:          meta.Name,
			Role:          meta.Role,
			PathData:      outline.PathData(c.Points, width, height),
			NameTagAnchor: outline.NameTagAnchor(c.Points, width, height, p.cfg.Outline),
			HitArea:       outline.HitArea(c.Points, width, height, p.cfg.Outline),
		})
	}

	if err := doc.Save(p.cfg.OutputPath); err != nil {
		return nil, warnings, fmt.Errorf("writing output: %w", err)
	}
	log.Printf("saved %d members to %s", len(doc.Members), p.cfg.OutputPath)

	return doc, warnings, nil
}

// acquire fetches or loads the source photo. Failure is fatal.
func (p *Pipeline) acquire(ctx context.Context) (image.Image, error) {
	switch {
	case p.cfg.ImagePath != "":
		return imageio.LoadFile(p.cfg.ImagePath)
	case p.cfg.ImageURL != "":
		log.Printf("downloading image from %s", truncateURL(p.cfg.ImageURL))
		return imageio.Fetch(ctx, p.cfg.ImageURL)
	default:
		return nil, fmt.Errorf("no image source configured")
	}
}

// foregroundMask returns the cached mask when present, otherwise runs
// background removal and caches the result.
func (p *Pipeline) foregroundMask(ctx context.Context, img image.Image) (gocv.Mat, error) {
	if p.cfg.MaskCachePath != "" {
		if mask, ok := imageio.LoadMask(p.cfg.MaskCachePath); ok {
			log.Printf("loaded existing mask from %s", p.cfg.MaskCachePath)
			return mask, nil
		}
	}

	log.Printf("removing background (this may take a moment)")
	cutout, err := p.remover.Remove(ctx, img)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("background removal: %w", err)
	}

	mask := imageio.GrayToMat(rembg.MaskFromCutout(cutout))

	if p.cfg.MaskCachePath != "" {
		if err := imageio.SaveMask(p.cfg.MaskCachePath, mask); err != nil {
			log.Printf("warning: caching mask: %v", err)
		} else {
			log.Printf("saved mask to %s", p.cfg.MaskCachePath)
		}
	}
	return mask, nil
}

// writeDebugArtifacts dumps the group sub-masks and the contour overlay.
// Failures here never affect the run.
func (p *Pipeline) writeDebugArtifacts(img, mask gocv.Mat, result *segment.Result) {
	overlay := segment.RenderOverlay(img, result)
	defer overlay.Close()

	dressMask := segment.SliceColumns(mask, 0, result.BoundaryX)
	defer dressMask.Close()
	suitMask := segment.SliceColumns(mask, result.BoundaryX, mask.Cols())
	defer suitMask.Close()

	artifacts := map[string]gocv.Mat{
		"foreground-mask.png":     mask,
		"dress-region-mask.png":   dressMask,
		"suit-region-mask.png":    suitMask,
		"segmentation-result.png": overlay,
	}
	for name, m := range artifacts {
		path := filepath.Join(p.cfg.DebugDir, name)
		if ok := gocv.IMWrite(path, m); !ok {
			log.Printf("warning: writing debug artifact %s", path)
		}
	}
	log.Printf("saved debug artifacts to %s", p.cfg.DebugDir)
}

// truncateURL shortens long (often signed) URLs for log lines.
func truncateURL(url string) string {
	if len(url) <= 50 {
		return url
	}
	return url[:50] + "..."
}
