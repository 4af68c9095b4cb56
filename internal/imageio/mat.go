package imageio

import (
	"image"
	"runtime"
	"sync"

	"gocv.io/x/gocv"
)

// ImageToMat converts a Go image.Image to a BGR gocv.Mat, parallelized by
// horizontal stripes.
func ImageToMat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// OpenCV's default channel order is BGR.
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)

	numWorkers := runtime.NumCPU()
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= height {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				for x := 0; x < width; x++ {
					r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
					mat.SetUCharAt(y, x*3+0, uint8(b>>8))
					mat.SetUCharAt(y, x*3+1, uint8(g>>8))
					mat.SetUCharAt(y, x*3+2, uint8(r>>8))
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return mat
}

// GrayToMat converts a grayscale Go image to a single-channel gocv.Mat.
func GrayToMat(img *image.Gray) gocv.Mat {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8U)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mat.SetUCharAt(y, x, img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
		}
	}
	return mat
}
