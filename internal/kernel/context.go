// Package kernel defines the arithmetic engine's tunable constants as an
// explicit value instead of process globals, so every BigInt operation
// that needs a threshold, crossover, or limit takes one of these instead
// of reading hidden state. The multiplication cache and logger that round
// out a full kernel Context live in package bigint, which is the only
// package that needs to know the shape of a cached result.
package kernel

// Config holds the kernel's tunable constants. Every field has a stated
// default; the zero Config is invalid and must be filled by DefaultConfig
// or explicit values before use.
type Config struct {
	// MapThreshold is the limb count (one byte per limb) at or above which
	// a BigInt's limb store adopts memory-mapped backing instead of a heap
	// buffer.
	MapThreshold int
	// KaratsubaCrossover is the limb count above which multiplication
	// switches from schoolbook to Karatsuba.
	KaratsubaCrossover int
	// FFTCrossover is the limb count at or above which multiplication prefers
	// the bigfft-based convolution over Karatsuba. Zero disables the FFT
	// path entirely.
	FFTCrossover int
	// EMax bounds the exponent accepted by Pow.
	EMax int
	// NMax bounds the argument accepted by Fact.
	NMax int
	// CacheCapacity bounds the number of entries kept in the
	// multiplication result cache.
	CacheCapacity int
	// MapDir, if non-empty, makes mapped limb stores file-backed scratch
	// files under this directory instead of anonymous mappings.
	MapDir string
}

// DefaultConfig returns the spec's stated default tunables: ~500KiB
// mapping threshold, Karatsuba crossover at 16 limbs, FFT crossover at
// 4096 limbs, pow exponent limit 1000, factorial limit 20, and a modest
// bounded cache.
func DefaultConfig() Config {
	return Config{
		MapThreshold:       500 * 1024,
		KaratsubaCrossover: 16,
		FFTCrossover:       4096,
		EMax:               1000,
		NMax:               20,
		CacheCapacity:      256,
	}
}
