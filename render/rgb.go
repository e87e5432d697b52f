package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RgbBackground = RGB{8, 10, 20}
)

// clamp converts float to uint8 efficiently
func clamp(v float32) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// RGBFromVec converts a [0,1] color vector, alpha ignored
func RGBFromVec(v mgl32.Vec4) RGB {
	return RGB{
		R: clamp(v[0]*255.0 + 0.5),
		G: clamp(v[1]*255.0 + 0.5),
		B: clamp(v[2]*255.0 + 0.5),
	}
}

// Vec returns the color as a [0,1] vector with alpha 1
func (c RGB) Vec() mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs linear interpolation: dst*(1-alpha) + src*alpha
func Blend(dst, src RGB, alpha float32) RGB {
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float32(dst.R)*inv + float32(src.R)*alpha),
		G: clamp(float32(dst.G)*inv + float32(src.G)*alpha),
		B: clamp(float32(dst.B)*inv + float32(src.B)*alpha),
	}
}

// Max returns the per-channel maximum
func Max(a, b RGB) RGB {
	return RGB{R: max(a.R, b.R), G: max(a.G, b.G), B: max(a.B, b.B)}
}

// Scale multiplies each channel by f with clamping
func Scale(c RGB, f float32) RGB {
	return RGB{
		R: clamp(float32(c.R) * f),
		G: clamp(float32(c.G) * f),
		B: clamp(float32(c.B) * f),
	}
}
