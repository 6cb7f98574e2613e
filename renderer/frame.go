package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdoutPath is the special output path that streams the frame to the
// standard output stream as plain-text PPM.
const StdoutPath = "-"

// Frame holds the 8-bit RGB pixel data for a rendered image. Pixels are
// stored row-major with the top frame row first.
type Frame struct {
	W, H int
	Pix  []uint8
}

// Create a new black frame with the given dims.
func NewFrame(w, h int) *Frame {
	return &Frame{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*3),
	}
}

// Stream the frame as a plain-text PPM (P3) image: header, dims, max
// channel value and one R G B triple per line.
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.W, f.H)
	for i := 0; i < len(f.Pix); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", f.Pix[i], f.Pix[i+1], f.Pix[i+2])
	}
	return bw.Flush()
}

// Encode the frame as a PNG image.
func (f *Frame) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for src, dst := 0, 0; src < len(f.Pix); src, dst = src+3, dst+4 {
		img.Pix[dst] = f.Pix[src]
		img.Pix[dst+1] = f.Pix[src+1]
		img.Pix[dst+2] = f.Pix[src+2]
		img.Pix[dst+3] = 0xff
	}
	return png.Encode(w, img)
}

// Save the frame to the file indicated by pathToFile, selecting the encoder
// from the file extension (.png or .ppm). The special path "-" streams PPM
// data to stdout instead.
func (f *Frame) Save(pathToFile string) error {
	if pathToFile == StdoutPath {
		return f.WritePPM(os.Stdout)
	}

	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(pathToFile)); ext {
	case ".png":
		encode = f.WritePNG
	case ".ppm":
		encode = f.WritePPM
	default:
		return fmt.Errorf("renderer: unsupported output image format '%s'", ext)
	}

	fh, err := os.Create(pathToFile)
	if err != nil {
		return fmt.Errorf("renderer: could not create output file: %v", err)
	}
	defer fh.Close()

	return encode(fh)
}
