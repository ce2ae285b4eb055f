package hal

// putXRGB stores one PixelFormatXRGB8888 pixel.
func putXRGB(dst []byte, r, g, b uint8) {
	dst[0] = b
	dst[1] = g
	dst[2] = r
	dst[3] = 0
}

// xrgbToRGBA converts a strided XRGB8888 buffer to tightly packed opaque
// RGBA, as used by image.RGBA and ebiten.
func xrgbToRGBA(dst, src []byte, width, height, stride int) {
	for y := 0; y < height; y++ {
		s := src[y*stride : y*stride+width*4]
		d := dst[y*width*4 : (y+1)*width*4]
		for i := 0; i < len(s); i += 4 {
			d[i+0] = s[i+2]
			d[i+1] = s[i+1]
			d[i+2] = s[i+0]
			d[i+3] = 0xFF
		}
	}
}

// alignStride rounds a row of width 4-byte pixels up to align bytes.
func alignStride(width, align int) int {
	n := width * 4
	if align > 4 {
		n = (n + align - 1) / align * align
	}
	return n
}
