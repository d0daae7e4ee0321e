// Package limb implements the base-81 digit vector that backs a BigInt's
// magnitude: a small inline heap buffer below a size threshold, and an
// anonymous (or file-backed) memory mapping above it, behind one view.
package limb

import (
	"os"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"modernc.org/memory"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// Backing names which storage strategy a Store has adopted.
type Backing int

const (
	Inline Backing = iota
	Mapped
)

func (b Backing) String() string {
	if b == Mapped {
		return "mapped"
	}
	return "inline"
}

// inlineAlloc is the process-wide slab allocator backing every Inline
// Store. modernc.org/memory.Allocator is not safe for concurrent callers,
// so every call through it is serialized by allocMu; this is the second
// (and only other) shared mutable resource in the kernel besides the
// multiplication cache.
var (
	inlineAlloc memory.Allocator
	allocMu     sync.Mutex
)

// Store is a variable-length vector of base-81 limbs (one per byte, each
// in [0, 80]), owning either a slab-allocated heap buffer or a memory
// mapping. Logical length may be less than the backing's capacity; Grow
// reallocates, SetLength only ever shrinks the logical view in place.
type Store struct {
	backing  Backing
	length   int
	buf      []byte // logical view over the backing, len(buf) == length
	file     *os.File
	released bool
}

// Allocate creates a Store of the given length (≥ 1), choosing Inline
// backing below thresholdBytes and Mapped (anonymous) backing at or above
// it.
func Allocate(length, thresholdBytes int) (*Store, error) {
	if length < 1 {
		return nil, kerr.NewArg(kerr.InvalidInput, "limb.Allocate", 0, "length must be >= 1")
	}
	if length < thresholdBytes {
		return allocateInline(length)
	}
	return allocateMapped(length, "")
}

// AllocateFileBacked behaves like Allocate's mapped path but backs the
// mapping with a uniquely named scratch file under dir, unlinking it
// immediately after the mapping is established so the mapping remains the
// sole reference to the storage, per the documented temporary-file
// contract.
func AllocateFileBacked(length int, dir string) (*Store, error) {
	if length < 1 {
		return nil, kerr.NewArg(kerr.InvalidInput, "limb.AllocateFileBacked", 0, "length must be >= 1")
	}
	name := "ternary-" + uuid.NewString() + ".limbs"
	f, err := os.CreateTemp(dir, name)
	if err != nil {
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.AllocateFileBacked", "creating scratch file")
	}
	if err := f.Truncate(int64(length)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.AllocateFileBacked", "sizing scratch file")
	}
	buf, err := unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.AllocateFileBacked", "mmap of scratch file")
	}
	// The mapping is now the sole reference to the storage; the directory
	// entry can go immediately, leaving no residual file on a crash.
	if err := os.Remove(f.Name()); err != nil {
		unix.Munmap(buf)
		f.Close()
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.AllocateFileBacked", "unlinking scratch file")
	}
	s := &Store{backing: Mapped, length: length, buf: buf[:length], file: f}
	runtime.SetFinalizer(s, (*Store).finalize)
	return s, nil
}

func allocateInline(length int) (*Store, error) {
	allocMu.Lock()
	buf, err := inlineAlloc.Malloc(length)
	allocMu.Unlock()
	if err != nil {
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.allocateInline", "slab allocation failed")
	}
	for i := range buf {
		buf[i] = 0
	}
	return &Store{backing: Inline, length: length, buf: buf[:length]}, nil
}

func allocateMapped(length int, dir string) (*Store, error) {
	if dir != "" {
		return AllocateFileBacked(length, dir)
	}
	buf, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, kerr.Wrap(err, kerr.Allocation, "limb.allocateMapped", humanize.Bytes(uint64(length))+" anonymous mapping failed")
	}
	s := &Store{backing: Mapped, length: length, buf: buf[:length]}
	runtime.SetFinalizer(s, (*Store).finalize)
	return s, nil
}

// Backing reports which storage strategy is in effect.
func (s *Store) Backing() Backing { return s.backing }

// Len reports the logical limb count.
func (s *Store) Len() int { return s.length }

// View returns the logical limb vector. The returned slice aliases the
// Store's backing and must not be retained past the Store's lifetime or
// handed across a goroutine boundary without the caller observing the
// standard aliasing rules.
func (s *Store) View() []byte { return s.buf }

// ViewMut is an alias of View provided for call-site clarity where the
// caller intends to mutate limbs in place.
func (s *Store) ViewMut() []byte { return s.buf }

// SetLength shrinks the logical view in place; used by normalization to
// strip high-order zero limbs without reallocating.
func (s *Store) SetLength(n int) {
	if n < 1 {
		n = 1
	}
	if n > len(s.buf) {
		n = len(s.buf)
	}
	s.length = n
	s.buf = s.buf[:n]
}

// Grow extends the Store to newLength, migrating backing strategy if the
// new size crosses thresholdBytes.
func (s *Store) Grow(newLength, thresholdBytes int) error {
	if newLength < s.length {
		return kerr.NewArg(kerr.InvalidInput, "limb.Grow", 0, "new length must not shrink the store")
	}
	if newLength == s.length {
		return nil
	}
	wantMapped := newLength >= thresholdBytes
	if s.backing == Inline && !wantMapped {
		allocMu.Lock()
		buf, err := inlineAlloc.Realloc(s.buf[:cap(s.buf)], newLength)
		allocMu.Unlock()
		if err != nil {
			return kerr.Wrap(err, kerr.Allocation, "limb.Grow", "slab reallocation failed")
		}
		for i := s.length; i < newLength; i++ {
			buf[i] = 0
		}
		s.buf = buf[:newLength]
		s.length = newLength
		return nil
	}
	// Crossing into (or staying within) mapped territory: allocate fresh
	// backing of the right kind and copy the live prefix across.
	var fresh *Store
	var err error
	if wantMapped {
		fresh, err = allocateMapped(newLength, "")
	} else {
		fresh, err = allocateInline(newLength)
	}
	if err != nil {
		return err
	}
	copy(fresh.buf, s.buf)
	if err := s.releaseBacking(); err != nil {
		fresh.Release()
		return err
	}
	s.backing = fresh.backing
	s.buf = fresh.buf
	s.length = fresh.length
	s.file = fresh.file
	runtime.SetFinalizer(s, nil)
	if s.backing == Mapped {
		runtime.SetFinalizer(s, (*Store).finalize)
	}
	runtime.SetFinalizer(fresh, nil)
	return nil
}

// Release returns the Store's backing to the OS/allocator exactly once.
// Calling Release on an already-released Store is a no-op.
func (s *Store) Release() error {
	if s.released {
		return nil
	}
	err := s.releaseBacking()
	s.released = true
	s.buf = nil
	runtime.SetFinalizer(s, nil)
	return err
}

func (s *Store) releaseBacking() error {
	switch s.backing {
	case Inline:
		allocMu.Lock()
		err := inlineAlloc.Free(s.buf[:cap(s.buf)])
		allocMu.Unlock()
		if err != nil {
			return kerr.Wrap(err, kerr.Allocation, "limb.Release", "slab free failed")
		}
		return nil
	case Mapped:
		if err := unix.Munmap(s.buf[:cap(s.buf)]); err != nil {
			return kerr.Wrap(err, kerr.Allocation, "limb.Release", "munmap failed")
		}
		if s.file != nil {
			if err := s.file.Close(); err != nil {
				return errors.Wrap(err, "limb.Release: closing scratch file descriptor")
			}
		}
		return nil
	default:
		return nil
	}
}

func (s *Store) finalize() {
	_ = s.Release()
}
