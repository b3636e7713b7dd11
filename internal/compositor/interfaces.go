// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compositor draws NFT images: a background with a shape drawn over
// it, both stretched to a square canvas, exported as PNG.
package compositor

//go:generate mockgen -source=interfaces.go -destination=../mock/compositor_mock.go -package=mock

// Compositor composes images from a fixed catalog of background and shape
// assets.
type Compositor interface {
	// Backgrounds lists the available background asset names in display order.
	Backgrounds() []string

	// Shapes lists the available shape asset names in display order.
	Shapes() []string

	// Compose draws background and then shape over it on the canvas and
	// returns the PNG encoding. Both names must come from the catalog.
	Compose(background, shape string) ([]byte, error)
}
