//go:build !nogpu

package wgpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/shape.wgsl
var shapeShaderSource string

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// compileSPIRV translates WGSL to SPIR-V words with naga.
func compileSPIRV(source string) ([]uint32, error) {
	code, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	if len(code) < 4 || len(code)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a SPIR-V module", ErrShaderCompile, len(code))
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: bad SPIR-V magic %#x", ErrShaderCompile, words[0])
	}
	return words, nil
}

// shaderSource returns the shape shader in the form variant consumes.
// Vulkan and the CPU backend take SPIR-V; Metal, DX12 and GL translate
// WGSL themselves per entry point.
func shaderSource(variant gputypes.Backend) (hal.ShaderSource, error) {
	switch variant {
	case gputypes.BackendVulkan, gputypes.BackendEmpty:
		words, err := compileSPIRV(shapeShaderSource)
		if err != nil {
			return hal.ShaderSource{}, err
		}
		return hal.ShaderSource{SPIRV: words}, nil
	default:
		return hal.ShaderSource{WGSL: shapeShaderSource}, nil
	}
}
