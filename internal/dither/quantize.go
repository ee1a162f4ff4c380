package dither

// Threshold is the largest channel value that quantizes to 0.
const Threshold = 127

// Quantize maps every channel of p independently to the nearest of 0 and 255.
// Channels are not combined, so a saturated color such as pure red survives
// as (255,0,0).
func Quantize(p Pixel) Pixel {
	return Pixel{level(p[0]), level(p[1]), level(p[2])}
}

func level(x uint8) uint8 {
	if x > Threshold {
		return 255
	}
	return 0
}
