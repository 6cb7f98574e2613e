package renderer

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePPM(t *testing.T) {
	frame := NewFrame(2, 2)
	copy(frame.Pix, []uint8{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 128, 128, 128,
	})

	var buf bytes.Buffer
	if err := frame.WritePPM(&buf); err != nil {
		t.Fatal(err)
	}

	exp := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n128 128 128\n"
	if buf.String() != exp {
		t.Fatalf("expected PPM output:\n%s\ngot:\n%s", exp, buf.String())
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	frame := NewFrame(2, 1)
	copy(frame.Pix, []uint8{255, 0, 0, 0, 0, 255})

	var buf bytes.Buffer
	if err := frame.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 1 {
		t.Fatalf("expected a 2x1 image; got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("expected red pixel at (0,0); got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(1, 0).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Fatalf("expected blue pixel at (1,0); got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestSaveFrame(t *testing.T) {
	frame := NewFrame(2, 2)
	pathToFile := filepath.Join(t.TempDir(), "frame.png")

	if err := frame.Save(pathToFile); err != nil {
		t.Fatal(err)
	}

	fh, err := os.Open(pathToFile)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()

	if _, err = png.Decode(fh); err != nil {
		t.Fatalf("expected saved file to decode as PNG; got %v", err)
	}
}

func TestSaveFrameUnsupportedFormat(t *testing.T) {
	frame := NewFrame(2, 2)

	expError := "renderer: unsupported output image format '.gif'"
	err := frame.Save(filepath.Join(t.TempDir(), "frame.gif"))
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
