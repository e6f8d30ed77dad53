package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InputType describes the kind of compiler input.
type InputType uint8

const (
	InputUndetected InputType = iota
	InputQASM
	InputMLIR
	InputBytecode
)

func (t InputType) String() string {
	switch t {
	case InputUndetected:
		return "undetected"
	case InputQASM:
		return "qasm"
	case InputMLIR:
		return "mlir"
	case InputBytecode:
		return "bytecode"
	}
	return "unknown"
}

// ParseInputType converts a -X flag value to an InputType.
func ParseInputType(s string) (InputType, error) {
	switch s {
	case "qasm":
		return InputQASM, nil
	case "mlir":
		return InputMLIR, nil
	case "bytecode":
		// MLIR treats bytecode as valid MLIR during parsing, but the
		// distinction is kept for payload bookkeeping.
		return InputBytecode, nil
	default:
		return InputUndetected, fmt.Errorf("invalid input type: %q (expected: qasm|mlir|bytecode)", s)
	}
}

// EmitAction describes the output artifact kind for a compilation run.
type EmitAction uint8

const (
	EmitUndetected EmitAction = iota
	EmitNone
	EmitAST
	EmitASTPretty
	EmitMLIR
	EmitBytecode
	EmitWaveMem
	EmitQEM
	EmitQEQEM
)

func (a EmitAction) String() string {
	switch a {
	case EmitUndetected:
		return "undetected"
	case EmitNone:
		return "none"
	case EmitAST:
		return "ast"
	case EmitASTPretty:
		return "ast-pretty"
	case EmitMLIR:
		return "mlir"
	case EmitBytecode:
		return "bytecode"
	case EmitWaveMem:
		return "wavemem"
	case EmitQEM:
		return "qem"
	case EmitQEQEM:
		return "qe-qem"
	}
	return "unknown"
}

// ParseEmitAction converts an --emit flag value to an EmitAction.
func ParseEmitAction(s string) (EmitAction, error) {
	switch s {
	case "ast":
		return EmitAST, nil
	case "ast-pretty":
		return EmitASTPretty, nil
	case "mlir":
		return EmitMLIR, nil
	case "bytecode":
		return EmitBytecode, nil
	case "wavemem":
		return EmitWaveMem, nil
	case "qem":
		return EmitQEM, nil
	case "qe-qem":
		return EmitQEQEM, nil
	case "none":
		return EmitNone, nil
	default:
		return EmitUndetected, fmt.Errorf("invalid emit action: %q (expected: ast|ast-pretty|mlir|bytecode|wavemem|qem|qe-qem|none)", s)
	}
}

// Verbosity controls how much the toolchain logs, ordered from errors only
// up to debug output.
type Verbosity uint8

const (
	VerbosityError Verbosity = iota
	VerbosityWarn
	VerbosityInfo
	VerbosityDebug
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityError:
		return "error"
	case VerbosityWarn:
		return "warn"
	case VerbosityInfo:
		return "info"
	case VerbosityDebug:
		return "debug"
	}
	return "unknown"
}

// ParseVerbosity converts a --verbosity flag value to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "error":
		return VerbosityError, nil
	case "warn":
		return VerbosityWarn, nil
	case "info":
		return VerbosityInfo, nil
	case "debug":
		return VerbosityDebug, nil
	default:
		return VerbosityWarn, fmt.Errorf("invalid verbosity: %q (expected: error|warn|info|debug)", s)
	}
}

// FileExtension classifies a file name by its recognized extension.
type FileExtension uint8

const (
	ExtNone FileExtension = iota
	ExtAST
	ExtQASM
	ExtMLIR
	ExtBytecode
	ExtWaveMem
	ExtQEM
	ExtQEQEM
)

// Extension returns the recognized extension of a file name, or ExtNone.
func Extension(name string) FileExtension {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ast":
		return ExtAST
	case ".qasm":
		return ExtQASM
	case ".mlir":
		return ExtMLIR
	case ".bc":
		return ExtBytecode
	case ".wmem":
		return ExtWaveMem
	case ".qem":
		return ExtQEM
	case ".qeqem":
		return ExtQEQEM
	}
	return ExtNone
}

// InputType maps a file extension to the input kind it implies.
func (e FileExtension) InputType() InputType {
	switch e {
	case ExtQASM:
		return InputQASM
	case ExtMLIR:
		return InputMLIR
	case ExtBytecode:
		return InputBytecode
	default:
		return InputUndetected
	}
}

// EmitAction maps a file extension to the emit action it implies.
func (e FileExtension) EmitAction() EmitAction {
	switch e {
	case ExtAST:
		return EmitAST
	case ExtMLIR:
		return EmitMLIR
	case ExtBytecode:
		return EmitBytecode
	case ExtWaveMem:
		return EmitWaveMem
	case ExtQEM:
		return EmitQEM
	case ExtQEQEM:
		return EmitQEQEM
	default:
		return EmitUndetected
	}
}
