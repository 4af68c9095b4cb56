package imageio

import (
	"fmt"
	"os"

	"gocv.io/x/gocv"
)

// LoadMask reads a previously computed grayscale mask from disk. ok is
// false when the file does not exist or cannot be decoded; the caller
// then recomputes the mask.
func LoadMask(path string) (gocv.Mat, bool) {
	if _, err := os.Stat(path); err != nil {
		return gocv.Mat{}, false
	}

	mask := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mask.Empty() {
		mask.Close()
		return gocv.Mat{}, false
	}
	return mask, true
}

// SaveMask writes a grayscale mask to disk for reuse on later runs.
func SaveMask(path string, mask gocv.Mat) error {
	if ok := gocv.IMWrite(path, mask); !ok {
		return fmt.Errorf("writing mask to %s", path)
	}
	return nil
}
