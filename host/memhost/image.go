// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"fmt"
	"image"
	"os"

	// Decoders for LoadFile.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/scratchcard/host"
)

// Image is an image element. SetSource queues a load on the owning
// document; the load callback fires from Document.LoadImages.
type Image struct {
	*Element

	src    string
	pic    image.Image
	onLoad func()

	width, height int
	sized         bool
}

// SetSource starts loading src.
func (img *Image) SetSource(src string) {
	img.src = src
	img.pic = nil
	if img.doc != nil {
		img.doc.request(img)
	}
}

// Source returns the image source.
func (img *Image) Source() string { return img.src }

// OnLoad installs the load callback; nil unsets it.
func (img *Image) OnLoad(fn func()) { img.onLoad = fn }

// Loaded reports whether the picture has been decoded.
func (img *Image) Loaded() bool { return img.pic != nil }

// Picture returns the decoded picture, or nil before it loads.
func (img *Image) Picture() image.Image { return img.pic }

// NaturalSize returns the decoded picture's dimensions, or 0x0 before it
// loads.
func (img *Image) NaturalSize() (width, height int) {
	if img.pic == nil {
		return 0, 0
	}
	b := img.pic.Bounds()
	return b.Dx(), b.Dy()
}

// SetSize sets the rendered size.
func (img *Image) SetSize(width, height int) {
	img.width, img.height = width, height
	img.sized = true
}

// Size returns the rendered size, defaulting to the natural size.
func (img *Image) Size() (width, height int) {
	if img.sized {
		return img.width, img.height
	}
	return img.NaturalSize()
}

func (img *Image) finish(pic image.Image) {
	img.pic = pic
	if img.onLoad != nil {
		img.onLoad()
	}
}

// LoadFile decodes the image file at path. PNG, JPEG, GIF, BMP and WebP
// are supported.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pic, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("memhost: decode %s: %w", path, err)
	}
	return pic, nil
}

var _ host.Image = (*Image)(nil)
