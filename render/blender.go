package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opMax     uint8 = 0x03
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	// BlendFgOnly draws glyphs: rune and foreground replaced, background kept
	BlendFgOnly = BlendMode(opReplace | flagFg)
	// BlendBgOnly paints fullscreen passes under existing glyphs
	BlendBgOnly = BlendMode(opReplace | flagBg)
	// BlendMaxBg lets glows overlap without darkening each other
	BlendMaxBg = BlendMode(opMax | flagBg)
	// BlendAlphaBg tints the background toward the source by alpha
	BlendAlphaBg = BlendMode(opAlpha | flagBg)
)

func (m BlendMode) apply(dst, src RGB, alpha float32) RGB {
	switch uint8(m) & 0x0F {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opMax:
		return Max(dst, src)
	default:
		return src
	}
}
