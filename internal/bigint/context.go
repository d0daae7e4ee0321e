package bigint

import (
	"log/slog"

	"github.com/copyl-sys/ternary/internal/kernel"
)

// Context is the kernel's single piece of explicit shared state that
// crosses BigInt boundaries: the tunable Config plus the multiplication
// cache they parameterize. One Context is created per process (or per
// test); distinct Contexts share no configuration or cache (inline limb
// stores still draw on package limb's process-wide slab allocator). This
// removes the hidden globals
// the source relied on and makes the cache trivially swappable in tests.
type Context struct {
	Config kernel.Config
	Cache  *MulCache
	Logger *slog.Logger
}

// NewContext builds a Context with its own multiplication cache sized per
// cfg.CacheCapacity.
func NewContext(cfg kernel.Config) *Context {
	return &Context{
		Config: cfg,
		Cache:  NewMulCache(cfg.CacheCapacity),
		Logger: slog.Default(),
	}
}

// New is a convenience constructor using kernel.DefaultConfig.
func New() *Context {
	return NewContext(kernel.DefaultConfig())
}
