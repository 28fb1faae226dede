//go:build !nogpu

package wgpu

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestShapeShaderCompiles(t *testing.T) {
	words, err := compileSPIRV(shapeShaderSource)
	if err != nil {
		t.Fatalf("compileSPIRV() error = %v", err)
	}
	if words[0] != spirvMagic {
		t.Errorf("magic = %#x", words[0])
	}
}

func TestShaderSourceByBackend(t *testing.T) {
	tests := []struct {
		variant gputypes.Backend
		spirv   bool
	}{
		{gputypes.BackendVulkan, true},
		{gputypes.BackendEmpty, true},
		{gputypes.BackendMetal, false},
		{gputypes.BackendDX12, false},
		{gputypes.BackendGL, false},
	}
	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			src, err := shaderSource(tt.variant)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(src.SPIRV) > 0; got != tt.spirv {
				t.Errorf("SPIRV present = %v, want %v", got, tt.spirv)
			}
			if !tt.spirv && !strings.Contains(src.WGSL, "fn vs_main") {
				t.Error("WGSL source missing vs_main")
			}
		})
	}
}

func TestCompileSPIRVRejectsBadSource(t *testing.T) {
	if _, err := compileSPIRV("fn broken( {"); err == nil {
		t.Error("compileSPIRV(invalid) returned no error")
	}
}
