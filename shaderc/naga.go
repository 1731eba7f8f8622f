package shaderc

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/bindless/types"
)

// NagaCompiler compiles WGSL through github.com/gogpu/naga: Parse+Lower
// once for entry-point reflection, naga.Compile for SPIR-V codegen.
// It prepends BindingHeader to every source before compilation,
// so the resource-binding header stays part of the core's contract with
// shader authors.
type NagaCompiler struct{}

// NewNagaCompiler returns the reference Compiler.
func NewNagaCompiler() *NagaCompiler { return &NagaCompiler{} }

// Compile implements Compiler.
func (c *NagaCompiler) Compile(sources []Source, entryPoints []EntryPoint) ([]CompiledEntryPoint, error) {
	text, err := concatSources(sources)
	if err != nil {
		return nil, &Error{Message: "read sources", Cause: err}
	}
	full := BindingHeader + "\n" + text

	// Parse + lower once for entry-point reflection (workgroup sizes,
	// validating the requested entry points actually exist), matching
	// hal/gles/shader.go's naga.Parse/naga.Lower pair.
	ast, err := naga.Parse(full)
	if err != nil {
		return nil, &Error{Message: "WGSL parse error", Cause: err}
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return nil, &Error{Message: "WGSL lower error", Cause: err}
	}
	workgroups := workgroupSizes(module)

	// naga.Compile does its own parse+lower+emit internally (as
	// cmd/vulkan-renderpass-test/main.go uses it); calling it once per
	// module is enough since SPIR-V contains every entry point's code and
	// downstream pipeline creation selects by name.
	spirvBytes, err := naga.Compile(full)
	if err != nil {
		return nil, &Error{Message: "SPIR-V codegen error", Cause: err}
	}
	if len(spirvBytes)%4 != 0 {
		return nil, &Error{Message: "SPIR-V byte count not a multiple of 4"}
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	out := make([]CompiledEntryPoint, 0, len(entryPoints))
	for _, ep := range entryPoints {
		irStage, ok := reflectedStage(module, ep.Name)
		if !ok {
			return nil, &Error{Message: fmt.Sprintf("entry point %q not found in module", ep.Name)}
		}
		if stageFromIR(irStage) != ep.Stage {
			return nil, &Error{Message: fmt.Sprintf("entry point %q is stage %v in source, requested as %v", ep.Name, irStage, ep.Stage)}
		}
		out = append(out, CompiledEntryPoint{
			Stage:         ep.Stage,
			Name:          ep.Name,
			Code:          words,
			WorkgroupSize: workgroups[ep.Name],
		})
	}
	return out, nil
}

func concatSources(sources []Source) (string, error) {
	var b strings.Builder
	for _, s := range sources {
		if s.Text != "" {
			b.WriteString(s.Text)
			b.WriteString("\n")
			continue
		}
		data, err := readSearched(s.Path, s.SearchPaths)
		if err != nil {
			return "", err
		}
		b.Write(data)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func readSearched(path string, searchPaths []string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	for _, dir := range searchPaths {
		if data, err := os.ReadFile(filepath.Join(dir, path)); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("shaderc: source %q not found (search paths: %v)", path, searchPaths)
}

func reflectedStage(module *ir.Module, name string) (ir.ShaderStage, bool) {
	if module == nil {
		return 0, false
	}
	for _, ep := range module.EntryPoints {
		if ep.Name == name {
			return ep.Stage, true
		}
	}
	return 0, false
}

func workgroupSizes(module *ir.Module) map[string][3]uint32 {
	out := make(map[string][3]uint32)
	if module == nil {
		return out
	}
	for _, ep := range module.EntryPoints {
		if ep.Stage == ir.StageCompute {
			out[ep.Name] = ep.Workgroup
		}
	}
	return out
}

// stageFromIR converts naga's entry-point stage enum to our types.ShaderStage,
// used only to cross-check a requested EntryPoint.Stage against reflection
// data when both are available.
func stageFromIR(stage ir.ShaderStage) types.ShaderStage {
	switch stage {
	case ir.StageVertex:
		return types.ShaderStageVertex
	case ir.StageFragment:
		return types.ShaderStageFragment
	case ir.StageCompute:
		return types.ShaderStageCompute
	default:
		return types.ShaderStageNone
	}
}
