package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/shapeplay"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != "software" {
		t.Errorf("Name() = %q, want %q", b.Name(), "software")
	}
}

func TestSoftwareBackendInit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestSoftwareBackendNewSurface(t *testing.T) {
	b := NewSoftwareBackend()
	if _, err := b.NewSurface(10, 10); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewSurface() before Init error = %v, want ErrNotInitialized", err)
	}

	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	s, err := b.NewSurface(100, 50)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d, want 100x50", w, h)
	}

	if _, err := b.NewSurface(0, 50); err == nil {
		t.Error("NewSurface(0, 50) succeeded")
	}
}

func TestSoftwareBackendCloseClosesSurfaces(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	s, err := b.NewSurface(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	b.Close()
	if err := s.BeginFrame(); err == nil {
		t.Error("surface still usable after backend Close")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init()
	if !IsRegistered("software") {
		t.Error("software backend should be auto-registered")
	}

	b := Get("software")
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != "software" {
		t.Errorf("Get(software).Name() = %q, want %q", b.Name(), "software")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	if !slices.Contains(available, "software") {
		t.Error("Available() should include 'software'")
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// Only the software backend is linked into this test binary.
	if b.Name() != "software" {
		t.Errorf("Default() = %q, want software", b.Name())
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()

	// Verify it's initialized by using it
	if _, err := b.NewSurface(100, 100); err != nil {
		t.Errorf("backend from InitDefault() not usable: %v", err)
	}
}

// failingBackend never initializes.
type failingBackend struct{}

var errNoDevice = errors.New("no device")

func (failingBackend) Name() string { return BackendWGPU }
func (failingBackend) Init() error  { return errNoDevice }
func (failingBackend) Close()       {}
func (failingBackend) NewSurface(int, int) (shapeplay.Surface, error) {
	return nil, ErrNotInitialized
}

func TestRegistryInitDefaultFallsBack(t *testing.T) {
	Register(BackendWGPU, func() RenderBackend { return failingBackend{} })
	defer Unregister(BackendWGPU)

	if got := Default().Name(); got != BackendWGPU {
		t.Fatalf("Default() = %q, want the higher priority %q", got, BackendWGPU)
	}

	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()
	if b.Name() != BackendSoftware {
		t.Errorf("InitDefault() = %q, want fallback to software", b.Name())
	}
}

func TestOpen(t *testing.T) {
	if _, err := Open("nonexistent"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(nonexistent) error = %v, want ErrBackendNotAvailable", err)
	}

	Register("broken", func() RenderBackend { return failingBackend{} })
	defer Unregister("broken")
	if _, err := Open("broken"); !errors.Is(err, errNoDevice) {
		t.Errorf("Open(broken) error = %v, want wrapped init failure", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() RenderBackend { return &SoftwareBackend{} })

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !IsRegistered("software") {
		t.Error("software should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

func BenchmarkSoftwareBackendNewSurface(b *testing.B) {
	backend := NewSoftwareBackend()
	_ = backend.Init()
	defer backend.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = backend.NewSurface(800, 600)
	}
}
