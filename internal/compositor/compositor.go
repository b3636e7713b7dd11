// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"golang.org/x/image/draw"
)

const (
	backgroundPrefix = "bg"
	shapePrefix      = "shape"
	assetExt         = ".png"
)

type pngCompositor struct {
	dir  string
	size int

	backgrounds []string
	shapes      []string

	logger *logger.Logger
}

// NewCompositor scans cfg.AssetsDir for bg*.png and shape*.png files and
// returns a [Compositor] drawing on a cfg.CanvasSize square canvas.
func NewCompositor(cfg config.Client, logger *logger.Logger) (Compositor, error) {
	if cfg.CanvasSize <= 0 {
		return nil, ErrInvalidCanvas
	}

	entries, err := os.ReadDir(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingAssetDir, err)
	}

	c := &pngCompositor{dir: cfg.AssetsDir, size: cfg.CanvasSize, logger: logger}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), assetExt) {
			continue
		}

		switch {
		case strings.HasPrefix(name, backgroundPrefix):
			c.backgrounds = append(c.backgrounds, name)
		case strings.HasPrefix(name, shapePrefix):
			c.shapes = append(c.shapes, name)
		}
	}

	if len(c.backgrounds) == 0 || len(c.shapes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAssets, cfg.AssetsDir)
	}

	slices.Sort(c.backgrounds)
	slices.Sort(c.shapes)

	logger.Debug().
		Strs("backgrounds", c.backgrounds).
		Strs("shapes", c.shapes).
		Msg("compositor assets loaded")

	return c, nil
}

func (c *pngCompositor) Backgrounds() []string {
	return slices.Clone(c.backgrounds)
}

func (c *pngCompositor) Shapes() []string {
	return slices.Clone(c.shapes)
}

func (c *pngCompositor) Compose(background, shape string) ([]byte, error) {
	if !slices.Contains(c.backgrounds, background) {
		return nil, fmt.Errorf("%w: background %q", ErrUnknownAsset, background)
	}
	if !slices.Contains(c.shapes, shape) {
		return nil, fmt.Errorf("%w: shape %q", ErrUnknownAsset, shape)
	}

	bg, err := c.load(background)
	if err != nil {
		return nil, err
	}
	sh, err := c.load(shape)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), bg, bg.Bounds(), draw.Src, nil)
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), sh, sh.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err = png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingImage, err)
	}

	return buf.Bytes(), nil
}

func (c *pngCompositor) load(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(c.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingAsset, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingAsset, name, err)
	}

	return img, nil
}
