// Package ui provides the macOS menu-bar interface for WG Menu Bar.
// This file contains icon generation for the menu-bar item.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Menu-bar icons are monochrome templates so macOS can recolor them to
// match the light or dark menu bar. Connected is a filled shield,
// disconnected is an outline.

const iconSize = 22

var iconInk = color.RGBA{0, 0, 0, 255}

// generateShieldIcon renders the shield as a PNG at menu-bar size.
func generateShieldIcon(filled bool) []byte {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	centerX := float64(iconSize) / 2
	topY := 2.0
	bottomY := float64(iconSize) - 3
	width := float64(iconSize) - 6

	inShield := func(x, y float64) bool {
		relY := (y - topY) / (bottomY - topY)
		if relY < 0 || relY > 1 {
			return false
		}
		var halfWidth float64
		if relY < 0.5 {
			halfWidth = width / 2
		} else {
			progress := (relY - 0.5) * 2
			halfWidth = (width / 2) * (1 - progress*progress)
		}
		return x >= centerX-halfWidth && x <= centerX+halfWidth
	}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inShield(fx, fy) {
				continue
			}
			border := !inShield(fx-1, fy) || !inShield(fx+1, fy) ||
				!inShield(fx, fy-1) || !inShield(fx, fy+1)
			if filled || border {
				img.Set(x, y, iconInk)
			}
		}
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// ConnectedIcon returns the icon for the connected state.
func ConnectedIcon() []byte {
	return generateShieldIcon(true)
}

// DisconnectedIcon returns the icon for the disconnected state.
func DisconnectedIcon() []byte {
	return generateShieldIcon(false)
}
