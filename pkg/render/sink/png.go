package sink

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodeStatic writes a single image to path. The format is inferred from
// the extension (the landscape artifact uses .png).
func EncodeStatic(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("encode static %s: nil image", path)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("encode static %s: %w", path, err)
	}
	return nil
}
