package internal

import (
	"fmt"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 5

// TextureCache keeps rendered label textures, evicting the least recently used.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// TextKey identifies a rendered string in a given color.
func TextKey(text string, c ui.Color) string {
	return fmt.Sprintf("%02x%02x%02x%02x:%s", c.R, c.G, c.B, c.A, text)
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			destroyTexture(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

// Keys returns cached keys from least to most recently used.
func (c *TextureCache) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		destroyTexture(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		destroyTexture(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}
