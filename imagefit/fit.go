// Package imagefit optionally downscales oversized imagery before it is
// handed to the OS. The full-disk GEOCOLOR product is over 10k pixels wide,
// far beyond what any desktop needs.
package imagefit

import (
	"image"
	"image/jpeg"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/m-mizutani/goerr/v2"
)

const jpegQuality = 90

// FitFile rewrites the JPEG at path in place when it is wider than
// maxWidth, preserving the aspect ratio. Returns true when the file was
// rewritten. maxWidth <= 0 disables fitting.
func FitFile(path string, maxWidth int) (bool, error) {
	if maxWidth <= 0 {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, goerr.Wrap(err, "open image", goerr.V("path", path))
	}
	src, err := jpeg.Decode(f)
	f.Close()
	if err != nil {
		return false, goerr.Wrap(err, "decode image", goerr.V("path", path))
	}

	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return false, nil
	}
	height := b.Dy() * maxWidth / b.Dx()

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)

	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return false, goerr.Wrap(err, "create temp file", goerr.V("path", tmp))
	}
	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		os.Remove(tmp)
		return false, goerr.Wrap(err, "encode image", goerr.V("path", tmp))
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return false, goerr.Wrap(err, "flush image", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false, goerr.Wrap(err, "replace image", goerr.V("path", path))
	}
	return true, nil
}
