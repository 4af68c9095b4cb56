package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"silhouette-tracer/internal/pipeline"
	"silhouette-tracer/internal/rembg"

	"github.com/spf13/cobra"
)

var extractFlags struct {
	url       string
	file      string
	photoID   string
	output    string
	maskCache string
	debugDir  string
	rembgURL  string
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the full extraction pipeline on one photo",
	Long: `Extract downloads (or loads) a group photo, obtains its foreground mask
from a rembg-compatible background-removal service, segments the mask
into per-person silhouettes, and writes the contour document.

A cached mask is reused when present, skipping background removal
entirely.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFlags.url, "url", "", "Photo URL to download")
	extractCmd.Flags().StringVar(&extractFlags.file, "file", "", "Local photo path (alternative to --url)")
	extractCmd.Flags().StringVar(&extractFlags.photoID, "photo-id", "", "Photo identifier for the output document (default: last URL path segment)")
	extractCmd.Flags().StringVar(&extractFlags.output, "output", filepath.Join("data", "contours.json"), "Output JSON path")
	extractCmd.Flags().StringVar(&extractFlags.maskCache, "mask-cache", filepath.Join(os.TempDir(), "silhouette-mask.png"), "Mask cache path (empty to disable)")
	extractCmd.Flags().StringVar(&extractFlags.debugDir, "debug-dir", "", "Directory for debug images (empty to disable)")
	extractCmd.Flags().StringVar(&extractFlags.rembgURL, "rembg", "http://localhost:7000", "Base URL of the background-removal service")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractFlags.url == "" && extractFlags.file == "" {
		return fmt.Errorf("one of --url or --file is required")
	}

	cfg := pipeline.DefaultConfig()
	cfg.ImageURL = extractFlags.url
	cfg.ImagePath = extractFlags.file
	cfg.PhotoID = extractFlags.photoID
	cfg.OutputPath = extractFlags.output
	cfg.MaskCachePath = extractFlags.maskCache
	cfg.DebugDir = extractFlags.debugDir

	if cfg.PhotoID == "" {
		cfg.PhotoID = derivePhotoID(extractFlags.url, extractFlags.file)
	}

	p := pipeline.New(cfg, rembg.NewClient(extractFlags.rembgURL))
	doc, warnings, err := p.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d members for photo %s\n", len(doc.Members), doc.PhotoID)
	for _, m := range doc.Members {
		fmt.Printf("  %-14s %-12s anchor=(%.4f, %.4f)\n", m.ID, m.Role, m.NameTagAnchor.X, m.NameTagAnchor.Y)
	}
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	fmt.Printf("Saved contour data to %s\n", cfg.OutputPath)
	return nil
}

// derivePhotoID falls back to the last URL or file path segment, without
// extension.
func derivePhotoID(url, file string) string {
	src := url
	if src == "" {
		src = file
	}
	src = strings.TrimRight(src, "/")
	if i := strings.LastIndexByte(src, '/'); i >= 0 {
		src = src[i+1:]
	}
	return strings.TrimSuffix(src, filepath.Ext(src))
}
