package generator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gen2brain/webp"
	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T) *ImageRenderer {
	t.Helper()
	fm, err := NewFontManager("", zap.NewNop())
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	t.Cleanup(func() { fm.Close() })
	return NewImageRenderer(fm, zap.NewNop())
}

func testRequest(w, h int, format Format) *RenderRequest {
	return &RenderRequest{
		Canvas: Canvas{Width: w, Height: h, Background: ParseHexNRGBA("#CCCCCC")},
		Overlay: TextOverlay{
			Text:       "placeholder",
			Color:      ParseHexNRGBA("#666666"),
			FontFamily: DefaultFontFamily,
			FontSize:   12,
			Align:      AlignCenter,
			WrapWidth:  w,
			Gravity:    GravityCenter,
		},
		Encoding: Encoding{Format: format},
	}
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"Jpg", FormatJPG, false},
		{"jpeg", FormatJPEG, false},
		{"WEBP", FormatWebP, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsKnownExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".png", true},
		{".JPG", true},
		{"webp", true},
		{".txt", false},
		{".", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsKnownExtension(tt.ext); got != tt.want {
			t.Errorf("IsKnownExtension(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestOutputSize(t *testing.T) {
	req := testRequest(800, 600, FormatPNG)
	if w, h := req.OutputSize(); w != 800 || h != 600 {
		t.Errorf("OutputSize() = %dx%d, want 800x600", w, h)
	}

	req.Border = &Border{Inset: 2}
	if w, h := req.OutputSize(); w != 804 || h != 604 {
		t.Errorf("OutputSize() with border = %dx%d, want 804x604", w, h)
	}
}

func TestImageRenderer(t *testing.T) {
	r := newTestRenderer(t)
	ctx := context.Background()

	t.Run("canvas and overlay", func(t *testing.T) {
		p, err := r.Render(ctx, testRequest(120, 60, FormatPNG))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		img := p.(*ImagePipeline).Image()

		if got := img.Bounds().Size(); got != image.Pt(120, 60) {
			t.Fatalf("size = %v, want 120x60", got)
		}
		bg := color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}
		if got := nrgbaAt(img, 0, 0); got != bg {
			t.Errorf("corner = %v, want background %v", got, bg)
		}

		inked := 0
		for y := 0; y < 60; y++ {
			for x := 0; x < 120; x++ {
				if nrgbaAt(img, x, y) != bg {
					inked++
				}
			}
		}
		if inked == 0 {
			t.Error("expected text pixels on the canvas")
		}
	})

	t.Run("border extends the image", func(t *testing.T) {
		req := testRequest(100, 50, FormatPNG)
		req.Border = &Border{Inset: 2, Color: ParseHexNRGBA("#333333")}

		p, err := r.Render(ctx, req)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		img := p.(*ImagePipeline).Image()

		if got := img.Bounds().Size(); got != image.Pt(104, 54) {
			t.Fatalf("size = %v, want 104x54", got)
		}
		border := color.NRGBA{0x33, 0x33, 0x33, 0xFF}
		for _, pt := range []image.Point{{0, 0}, {1, 1}, {103, 53}, {102, 0}} {
			if got := nrgbaAt(img, pt.X, pt.Y); got != border {
				t.Errorf("pixel %v = %v, want border %v", pt, got, border)
			}
		}
		if got := nrgbaAt(img, 2, 2); got != (color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}) {
			t.Errorf("pixel (2,2) = %v, want background", got)
		}
	})

	t.Run("invalid canvas", func(t *testing.T) {
		if _, err := r.Render(ctx, testRequest(0, 10, FormatPNG)); err == nil {
			t.Error("expected error for zero width")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := r.Render(cctx, testRequest(10, 10, FormatPNG)); !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

func TestImagePipelineToFile(t *testing.T) {
	r := newTestRenderer(t)
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		p, err := r.Render(context.Background(), testRequest(64, 32, FormatPNG))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		path := filepath.Join(dir, "out.png")
		if err := p.ToFile(path); err != nil {
			t.Fatalf("ToFile: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cfg.Width != 64 || cfg.Height != 32 {
			t.Errorf("decoded %dx%d, want 64x32", cfg.Width, cfg.Height)
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		req := testRequest(80, 40, FormatJPG)
		req.Encoding.Quality = LossyQuality
		p, err := r.Render(context.Background(), req)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		path := filepath.Join(dir, "out.jpg")
		if err := p.ToFile(path); err != nil {
			t.Fatalf("ToFile: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer f.Close()
		cfg, err := jpeg.DecodeConfig(f)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cfg.Width != 80 || cfg.Height != 40 {
			t.Errorf("decoded %dx%d, want 80x40", cfg.Width, cfg.Height)
		}
	})

	t.Run("webp", func(t *testing.T) {
		req := testRequest(16, 16, FormatWebP)
		req.Encoding.Quality = LossyQuality
		p, err := r.Render(context.Background(), req)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		var buf bytes.Buffer
		if err := p.(*ImagePipeline).Encode(&buf); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		b := buf.Bytes()
		if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
			t.Errorf("output is not a WebP container")
		}

		path := filepath.Join(dir, "out.webp")
		if err := p.ToFile(path); err != nil {
			t.Fatalf("ToFile: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer f.Close()
		cfg, err := webp.DecodeConfig(f)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if cfg.Width != 16 || cfg.Height != 16 {
			t.Errorf("decoded %dx%d, want 16x16", cfg.Width, cfg.Height)
		}
	})
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(dir, "ok.bin")
		err := WriteFileAtomic(path, func(w io.Writer) error {
			_, err := w.Write([]byte("data"))
			return err
		})
		if err != nil {
			t.Fatalf("WriteFileAtomic: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil || string(got) != "data" {
			t.Errorf("read back %q, %v", got, err)
		}
	})

	t.Run("failure leaves nothing behind", func(t *testing.T) {
		path := filepath.Join(dir, "bad.bin")
		encodeErr := errors.New("encoder exploded")
		err := WriteFileAtomic(path, func(w io.Writer) error {
			w.Write([]byte("partial"))
			return encodeErr
		})
		if !errors.Is(err, encodeErr) {
			t.Fatalf("err = %v, want %v", err, encodeErr)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be absent, stat err = %v", path, err)
		}
		matches, _ := filepath.Glob(filepath.Join(dir, ".placehold-*"))
		if len(matches) != 0 {
			t.Errorf("temporary files left behind: %v", matches)
		}
	})

	t.Run("close failure", func(t *testing.T) {
		path := filepath.Join(dir, "closed.bin")
		err := WriteFileAtomic(path, func(w io.Writer) error {
			// Closing early makes the writer's own Close fail.
			return w.(io.Closer).Close()
		})
		if err == nil || !strings.Contains(err.Error(), "close") {
			t.Fatalf("err = %v, want close error", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be absent, stat err = %v", path, err)
		}
		matches, _ := filepath.Glob(filepath.Join(dir, ".placehold-*"))
		if len(matches) != 0 {
			t.Errorf("temporary files left behind: %v", matches)
		}
	})

	t.Run("file mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not enforced on windows")
		}
		path := filepath.Join(dir, "mode.bin")
		if err := WriteFileAtomic(path, func(io.Writer) error { return nil }); err != nil {
			t.Fatalf("WriteFileAtomic: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := info.Mode().Perm(); got != FileMode {
			t.Errorf("mode = %v, want %v", got, FileMode)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(dir, "nope", "x.bin")
		if err := WriteFileAtomic(path, func(io.Writer) error { return nil }); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestWrapText(t *testing.T) {
	fm, err := NewFontManager("", zap.NewNop())
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	defer fm.Close()
	face, err := fm.Face(12)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}

	if got := wrapText("", 100, face); got != nil {
		t.Errorf("wrapText(empty) = %v, want nil", got)
	}
	if got := wrapText("one two three", 0, face); len(got) != 1 || got[0] != "one two three" {
		t.Errorf("wrapText without width = %v", got)
	}
	if got := wrapText("one two three", 1, face); len(got) != 3 {
		t.Errorf("wrapText narrow = %v, want 3 lines", got)
	}
	if got := layoutLines("a\nb c", 1000, face); len(got) != 2 {
		t.Errorf("layoutLines = %v, want 2 lines", got)
	}
}

func TestFontManagerFallback(t *testing.T) {
	fm, err := NewFontManager(filepath.Join(t.TempDir(), "missing.ttf"), zap.NewNop())
	if err != nil {
		t.Fatalf("expected fallback font, got error: %v", err)
	}
	defer fm.Close()

	a, err := fm.Face(20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b, _ := fm.Face(20)
	if a != b {
		t.Error("expected cached face for the same size")
	}
}
