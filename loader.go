package burrow

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a decoded image shared by any number of sprite nodes. The GPU
// image is created lazily on first draw so textures can be decoded off the
// game goroutine.
type Texture struct {
	Path          string
	Width, Height int

	src image.Image
	img *ebiten.Image
}

// NewTexture wraps an already uploaded image.
func NewTexture(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{Width: b.Dx(), Height: b.Dy(), img: img}
}

// NewTextureFromImage wraps a decoded image. Upload happens on first use.
func NewTextureFromImage(name string, src image.Image) *Texture {
	b := src.Bounds()
	return &Texture{Path: name, Width: b.Dx(), Height: b.Dy(), src: src}
}

// Image returns the GPU image, uploading the decoded source on first call.
// Must be called from the game goroutine. Returns nil for a texture with
// neither a source nor an image.
func (t *Texture) Image() *ebiten.Image {
	if t.img == nil && t.src != nil {
		t.img = ebiten.NewImageFromImage(t.src)
		t.src = nil
	}
	return t.img
}

// Dispose releases the GPU image.
func (t *Texture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
	t.src = nil
}

// CompressedExt and StandardExt are the variants tried for an extensionless
// texture path.
const (
	CompressedExt = ".ktx2"
	StandardExt   = ".png"
)

var errNoLoader = errors.New("burrow: no texture loader configured")

// LoadResult carries the outcome of an asynchronous load.
type LoadResult struct {
	Texture *Texture
	Err     error
}

// Loader decodes textures from a file system and caches them by path.
//
// Paths without an extension are resolved by trying the compressed variant
// first (when PreferCompressed is set) and falling back to the standard PNG.
// Paths with an extension are loaded as-is.
type Loader struct {
	// PreferCompressed tries base+CompressedExt before base+StandardExt.
	PreferCompressed bool

	fsys fs.FS

	// LoadAsync decodes on a separate goroutine, so the cache is shared.
	mu    sync.Mutex
	cache map[string]*Texture
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*Texture)}
}

// Load returns the texture at p, decoding it on first request.
func (l *Loader) Load(ctx context.Context, p string) (*Texture, error) {
	if tex := l.cached(p); tex != nil {
		return tex, nil
	}

	var (
		tex *Texture
		err error
	)
	if path.Ext(p) != "" {
		tex, err = l.decode(ctx, p)
	} else {
		tex, err = l.resolve(ctx, p)
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if existing, ok := l.cache[p]; ok {
		tex = existing
	} else {
		l.cache[p] = tex
	}
	l.mu.Unlock()
	return tex, nil
}

// resolve tries the compressed and standard variants of an extensionless path.
func (l *Loader) resolve(ctx context.Context, base string) (*Texture, error) {
	if l.PreferCompressed {
		tex, err := l.decode(ctx, base+CompressedExt)
		if err == nil {
			return tex, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		log.Printf("[loader] compressed texture %s unavailable, falling back to %s: %v",
			base+CompressedExt, StandardExt, err)
	}
	return l.decode(ctx, base+StandardExt)
}

func (l *Loader) decode(ctx context.Context, p string) (*Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("burrow: load %s: %w", p, err)
	}
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("burrow: open texture %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("burrow: decode texture %s: %w", p, err)
	}
	return NewTextureFromImage(p, img), nil
}

func (l *Loader) cached(p string) *Texture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache[p]
}

// LoadAsync decodes p on a new goroutine. The returned channel is buffered
// and receives exactly one result, so the caller may poll it from a tick
// callback without blocking.
func (l *Loader) LoadAsync(ctx context.Context, p string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		tex, err := l.Load(ctx, p)
		ch <- LoadResult{Texture: tex, Err: err}
	}()
	return ch
}

// Preload loads every path and returns the joined errors of those that
// failed. Successfully loaded textures stay cached.
func (l *Loader) Preload(ctx context.Context, paths ...string) error {
	var errs []error
	for _, p := range paths {
		if _, err := l.Load(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Release disposes and forgets every cached texture.
func (l *Loader) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for p, tex := range l.cache {
		tex.Dispose()
		delete(l.cache, p)
	}
}
