package guigrid

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/disintegration/imaging"
	"github.com/esimov/guigrid/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when an image source does not hold image data.
var ErrNotImage = errors.New("not an image file")

// Image shows a picture scaled down to fit its cell, keeping the aspect ratio.
type Image struct {
	name string
	src  *image.NRGBA

	// fitted is src scaled for the last seen cell size.
	fitted  *image.NRGBA
	fitSize image.Point
	imgOp   paint.ImageOp
}

// Img returns an image widget showing img. The name is used as widget text.
func Img(img image.Image, name string) *Image {
	return &Image{
		name: name,
		src:  imaging.Clone(img),
	}
}

// LoadImage decodes the image found at src, which is either a local path or an http(s) url.
// The widget text is the file name without extension.
func LoadImage(src string) (*Image, error) {
	path := src
	if utils.IsValidUrl(src) {
		f, err := utils.Fetch(src)
		if err != nil {
			return nil, err
		}
		f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	base := filepath.Base(src)
	return Img(img, strings.TrimSuffix(base, filepath.Ext(base))), nil
}

// decodeImage opens and decodes an image file, rejecting non image content early.
func decodeImage(path string) (image.Image, error) {
	ok, err := utils.IsImage(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotImage
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the image: %w", err)
	}
	return img, nil
}

// Kind returns KindImage.
func (i *Image) Kind() Kind { return KindImage }

// Text returns the image name.
func (i *Image) Text() string { return i.name }

// Bounds returns the size of the original picture.
func (i *Image) Bounds() image.Rectangle { return i.src.Bounds() }

// fit scales the picture to fit into max. Pictures are never enlarged.
func (i *Image) fit(max image.Point) *image.NRGBA {
	if i.fitted != nil && i.fitSize == max {
		return i.fitted
	}
	i.fitSize = max
	i.fitted = imaging.Fit(i.src, max.X, max.Y, imaging.Lanczos)
	i.imgOp = paint.NewImageOp(i.fitted)
	return i.fitted
}

// measure returns the size of the picture once fitted into max, without resampling it.
func (i *Image) measure(max image.Point) image.Point {
	return fitSize(i.src.Bounds().Size(), max)
}

// fitSize follows the arithmetic of imaging.Fit.
func fitSize(src, max image.Point) image.Point {
	if max.X <= 0 || max.Y <= 0 || src.X <= 0 || src.Y <= 0 {
		return image.Point{}
	}
	if src.X <= max.X && src.Y <= max.Y {
		return src
	}
	srcRatio := float64(src.X) / float64(src.Y)
	if srcRatio > float64(max.X)/float64(max.Y) {
		return image.Pt(max.X, int(float64(max.X)/srcRatio))
	}
	return image.Pt(int(float64(max.Y)*srcRatio), max.Y)
}

// Layout paints the picture fitted into the maximum constraints.
func (i *Image) Layout(gtx layout.Context, _ *material.Theme) layout.Dimensions {
	max := gtx.Constraints.Max
	if max.X <= 0 || max.Y <= 0 || i.src.Bounds().Empty() {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	size := i.fit(max).Bounds().Size()

	i.imgOp.Add(gtx.Ops)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: size}
}
