package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/text.wgsl
var textShaderSource string

// CompileSPIRV compiles WGSL source to SPIR-V words.
func CompileSPIRV(wgsl string) ([]uint32, error) {
	spirv, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpu: compile shader: SPIR-V length %d is not word aligned", len(spirv))
	}

	// SPIR-V words are little-endian.
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words, nil
}

func shaderSource(wgsl bool) (hal.ShaderSource, error) {
	if textShaderSource == "" {
		return hal.ShaderSource{}, fmt.Errorf("gpu: text shader source is empty")
	}
	if wgsl {
		return hal.ShaderSource{WGSL: textShaderSource}, nil
	}
	words, err := CompileSPIRV(textShaderSource)
	if err != nil {
		return hal.ShaderSource{}, err
	}
	return hal.ShaderSource{SPIRV: words}, nil
}
