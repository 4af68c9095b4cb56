package segment

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

// fixedBoundary is a boundary strategy pinned to one position.
type fixedBoundary struct {
	x int
}

func (f fixedBoundary) Detect(_, _ gocv.Mat) (int, error) {
	return f.x, nil
}

// newTestMask builds a single-channel mask with the given rectangles
// filled white.
func newTestMask(width, height int, blobs ...image.Rectangle) gocv.Mat {
	mask := gocv.Zeros(height, width, gocv.MatTypeCV8U)
	for _, b := range blobs {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				mask.SetUCharAt(y, x, 255)
			}
		}
	}
	return mask
}

func TestSegmentSixBlobs(t *testing.T) {
	// Six well-separated blobs, three on each side of a forced boundary
	// at x=300.
	mask := newTestMask(600, 400,
		image.Rect(20, 50, 80, 350),
		image.Rect(120, 50, 180, 350),
		image.Rect(220, 50, 280, 350),
		image.Rect(320, 50, 380, 350),
		image.Rect(420, 50, 480, 350),
		image.Rect(520, 50, 580, 350))
	defer mask.Close()

	img := gocv.Zeros(400, 600, gocv.MatTypeCV8UC3)
	defer img.Close()

	result, err := Segment(img, mask, fixedBoundary{x: 300}, DefaultParams())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(result.Contours) != 6 {
		t.Fatalf("got %d contours; want 6 (warnings: %v)", len(result.Contours), result.Warnings)
	}

	wantGroups := []Group{GroupDress, GroupDress, GroupDress, GroupSuit, GroupSuit, GroupSuit}
	wantCenters := []int{50, 150, 250, 350, 450, 550}
	for i, c := range result.Contours {
		if i > 0 && c.CenterX <= result.Contours[i-1].CenterX {
			t.Errorf("contours not in ascending centroid order at index %d", i)
		}
		if c.Group != wantGroups[i] {
			t.Errorf("contour %d group = %s; want %s", i, c.Group, wantGroups[i])
		}
		if c.CenterX < wantCenters[i]-10 || c.CenterX > wantCenters[i]+10 {
			t.Errorf("contour %d center = %d; want ~%d", i, c.CenterX, wantCenters[i])
		}
		if len(c.Points) < 3 {
			t.Errorf("contour %d has %d points; want a closed polygon", i, len(c.Points))
		}
		if c.Area <= 0 {
			t.Errorf("contour %d area = %f; want positive", i, c.Area)
		}
	}
}

func TestSegmentLargestContourWins(t *testing.T) {
	// One dominant blob per slice plus a tiny noise speck; only the
	// dominant contour survives.
	mask := newTestMask(600, 400,
		image.Rect(20, 50, 280, 350),
		image.Rect(40, 370, 50, 380), // noise in the dress half
		image.Rect(320, 50, 580, 350))
	defer mask.Close()

	img := gocv.Zeros(400, 600, gocv.MatTypeCV8UC3)
	defer img.Close()

	p := DefaultParams().WithPeoplePerGroup(1)
	result, err := Segment(img, mask, fixedBoundary{x: 300}, p)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(result.Contours) != 2 {
		t.Fatalf("got %d contours; want 2", len(result.Contours))
	}
	for i, c := range result.Contours {
		if c.Area < 1000 {
			t.Errorf("contour %d area = %f; the noise speck should have been discarded", i, c.Area)
		}
	}
}

func TestSegmentEmptySuitRegion(t *testing.T) {
	// All foreground left of the boundary: the suit group produces no
	// records and a warning, the dress group still segments.
	mask := newTestMask(600, 400,
		image.Rect(20, 50, 80, 350),
		image.Rect(120, 50, 180, 350),
		image.Rect(220, 50, 280, 350))
	defer mask.Close()

	img := gocv.Zeros(400, 600, gocv.MatTypeCV8UC3)
	defer img.Close()

	result, err := Segment(img, mask, fixedBoundary{x: 300}, DefaultParams())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(result.Contours) != 3 {
		t.Errorf("got %d contours; want 3 from the dress group", len(result.Contours))
	}
	for _, c := range result.Contours {
		if c.Group != GroupDress {
			t.Errorf("unexpected %s contour", c.Group)
		}
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the empty suit region")
	}
}

func TestSegmentDimensionMismatch(t *testing.T) {
	mask := newTestMask(600, 400)
	defer mask.Close()
	img := gocv.Zeros(200, 300, gocv.MatTypeCV8UC3)
	defer img.Close()

	if _, err := Segment(img, mask, fixedBoundary{x: 150}, DefaultParams()); err == nil {
		t.Error("Segment should fail on mismatched dimensions")
	}
}

func TestSliceColumns(t *testing.T) {
	mask := newTestMask(100, 50, image.Rect(0, 0, 100, 50))
	defer mask.Close()

	slice := SliceColumns(mask, 30, 60)
	defer slice.Close()

	if n := gocv.CountNonZero(slice); n != 30*50 {
		t.Errorf("slice has %d foreground pixels; want %d", n, 30*50)
	}
	if v := slice.GetUCharAt(25, 29); v != 0 {
		t.Errorf("pixel left of slice = %d; want 0", v)
	}
	if v := slice.GetUCharAt(25, 30); v != 255 {
		t.Errorf("pixel inside slice = %d; want 255", v)
	}
	if v := slice.GetUCharAt(25, 60); v != 0 {
		t.Errorf("pixel right of slice = %d; want 0", v)
	}
}
