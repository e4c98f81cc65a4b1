package spherecast

import (
	"image"
	"image/color"
)

// RGB8 is an 8-bit color.
type RGB8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c RGB8) NRGBA() color.NRGBA { return color.NRGBA{c.R, c.G, c.B, 0xFF} }

// Framebuffer stores one hit flag per pixel, row-major.
// Distinct pixels may be written from different goroutines.
type Framebuffer struct {
	Width, Height int
	Buf           []bool
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("framebuffer resolution must be positive")
	}
	return &Framebuffer{Width: width, Height: height, Buf: make([]bool, width*height)}
}

func (fb *Framebuffer) idx(x, y int) int { return y*fb.Width + x }

func (fb *Framebuffer) Set(x, y int, hit bool) { fb.Buf[fb.idx(x, y)] = hit }
func (fb *Framebuffer) At(x, y int) bool       { return fb.Buf[fb.idx(x, y)] }

// Hits counts pixels flagged as hits.
func (fb *Framebuffer) Hits() int {
	n := 0
	for _, h := range fb.Buf {
		if h {
			n++
		}
	}
	return n
}

// Image maps hit flags to hit/miss colors. Row 0 is the top of the image.
func (fb *Framebuffer) Image(hit, miss RGB8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	const pxBytes = 4
	for y := 0; y < fb.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			c := miss
			if fb.At(x, y) {
				c = hit
			}
			p := rowOff + x*pxBytes
			img.Pix[p+0] = c.R
			img.Pix[p+1] = c.G
			img.Pix[p+2] = c.B
			img.Pix[p+3] = 0xFF
		}
	}
	return img
}
