package stamp

import (
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

// padRatio expands the crop rectangle by this fraction of its own width and
// height on each side before clamping to the image bounds.
const padRatio = 0.15

// Cropper cuts individual stamp images out of a page photo and persists them
// under a stamp-ID-keyed path.
type Cropper struct {
	outputDir string
	quality   int
	logger    *slog.Logger
}

func NewCropper(cfg common.CropConfig, logger *slog.Logger) *Cropper {
	if logger == nil {
		logger = slog.Default()
	}
	quality := cfg.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	return &Cropper{outputDir: cfg.OutputDir, quality: quality, logger: logger}
}

// Crop computes a padded, clamped axis-aligned rectangle from a 4-vertex
// bounding polygon, writes the cropped JPEG under the stamp ID, and returns a
// relative reference. Wrong vertex counts and degenerate rectangles signal
// ErrInvalidGeometry.
func (c *Cropper) Crop(src image.Image, poly ocr.BoundingPoly, stampID string) (string, error) {
	rect, err := cropRect(poly, src.Bounds())
	if err != nil {
		return "", err
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.Copy(dst, image.Point{}, src, rect, xdraw.Src, nil)

	dir := filepath.Join(c.outputDir, "stamps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", common.WrapError(err, "create stamps dir")
	}
	name := stampID + ".jpg"
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", common.WrapError(err, "create stamp image")
	}
	defer f.Close()
	if err := jpeg.Encode(f, dst, &jpeg.Options{Quality: c.quality}); err != nil {
		return "", common.WrapError(err, "encode stamp image")
	}

	ref := filepath.ToSlash(filepath.Join("stamps", name))
	c.logger.Debug("stamp image written", "stamp_id", stampID, "ref", ref)
	return ref, nil
}

// cropRect derives the padded crop rectangle, clamped to bounds.
func cropRect(poly ocr.BoundingPoly, bounds image.Rectangle) (image.Rectangle, error) {
	if len(poly.Vertices) != 4 {
		return image.Rectangle{}, common.NewAppError("BAD_POLYGON", "bounding polygon must have 4 vertices", common.ErrInvalidGeometry)
	}

	minX, minY := poly.Vertices[0].X, poly.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range poly.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	padX := int(float64(maxX-minX) * padRatio)
	padY := int(float64(maxY-minY) * padRatio)
	rect := image.Rect(minX-padX, minY-padY, maxX+padX, maxY+padY).Intersect(bounds)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return image.Rectangle{}, common.NewAppError("BAD_POLYGON", "crop rectangle is degenerate", common.ErrInvalidGeometry)
	}
	return rect, nil
}
