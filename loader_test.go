package burrow

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"bunny.png":  {Data: pngBytes(t, 26, 37)},
		"broken.png": {Data: []byte("not a png")},
		"fancy.ktx2": {Data: []byte("KTX 20 but not decodable")},
		"fancy.png":  {Data: pngBytes(t, 8, 8)},
	}
}

func TestLoaderLoadWithExtension(t *testing.T) {
	l := NewLoader(testFS(t))
	tex, err := l.Load(t.Context(), "bunny.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width != 26 || tex.Height != 37 {
		t.Errorf("size = %dx%d, want 26x37", tex.Width, tex.Height)
	}
	if tex.Path != "bunny.png" {
		t.Errorf("Path = %q, want bunny.png", tex.Path)
	}
}

func TestLoaderFallsBackToPNG(t *testing.T) {
	l := NewLoader(testFS(t))
	l.PreferCompressed = true

	tex, err := l.Load(t.Context(), "bunny")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Path != "bunny.png" {
		t.Errorf("Path = %q, want bunny.png", tex.Path)
	}
}

func TestLoaderFallsBackOnUndecodableCompressed(t *testing.T) {
	l := NewLoader(testFS(t))
	l.PreferCompressed = true

	tex, err := l.Load(t.Context(), "fancy")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Path != "fancy.png" || tex.Width != 8 {
		t.Errorf("got %q %dx%d, want fancy.png 8x8", tex.Path, tex.Width, tex.Height)
	}
}

func TestLoaderCaches(t *testing.T) {
	l := NewLoader(testFS(t))
	a, err := l.Load(t.Context(), "bunny")
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Load(t.Context(), "bunny")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Load should return the cached texture")
	}

	l.Release()
	c, err := l.Load(t.Context(), "bunny")
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Error("Load after Release should decode again")
	}
}

func TestLoaderMissing(t *testing.T) {
	l := NewLoader(testFS(t))
	_, err := l.Load(t.Context(), "nope")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoaderDecodeError(t *testing.T) {
	l := NewLoader(testFS(t))
	if _, err := l.Load(t.Context(), "broken.png"); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoaderCancelled(t *testing.T) {
	l := NewLoader(testFS(t))
	l.PreferCompressed = true
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := l.Load(ctx, "bunny")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLoaderLoadAsync(t *testing.T) {
	l := NewLoader(testFS(t))
	res := <-l.LoadAsync(t.Context(), "bunny")
	if res.Err != nil {
		t.Fatalf("LoadAsync: %v", res.Err)
	}
	if res.Texture == nil || res.Texture.Width != 26 {
		t.Errorf("unexpected texture %+v", res.Texture)
	}

	res = <-l.LoadAsync(t.Context(), "nope")
	if res.Err == nil || res.Texture != nil {
		t.Errorf("expected error result, got %+v", res)
	}
}

func TestLoaderPreload(t *testing.T) {
	l := NewLoader(testFS(t))
	err := l.Preload(t.Context(), "bunny", "nope", "broken.png")
	if err == nil {
		t.Fatal("expected joined error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("joined error should wrap fs.ErrNotExist: %v", err)
	}
	if l.cached("bunny") == nil {
		t.Error("successful preload should be cached")
	}
}
