package diag

// Category is the closed enumeration of diagnostic causes.
type Category uint8

const (
	// CatQASMParseFailure reports a failure while parsing OpenQASM 3 input.
	CatQASMParseFailure Category = iota
	// CatCompilerError reports an otherwise unclassified compiler error.
	CatCompilerError
	// CatNoInput reports that no input file or string was provided.
	CatNoInput
	// CatCommunicationFailure reports a compilation communication failure.
	CatCommunicationFailure
	// CatEOFFailure reports a premature end of input.
	CatEOFFailure
	// CatNonZeroStatus reports a non-zero status from an external process.
	CatNonZeroStatus
	// CatSequenceTooLong reports that the input sequence exceeds limits.
	CatSequenceTooLong
	// CatCompilationFailure reports a failure during compilation.
	CatCompilationFailure
	// CatLinkerNotImplemented reports a target without argument binding.
	CatLinkerNotImplemented
	// CatLinkSignatureWarning reports a malformed but still processable
	// signature file.
	CatLinkSignatureWarning
	// CatLinkSignatureError reports a malformed signature file.
	CatLinkSignatureError
	// CatLinkAddressError reports an invalid signature address.
	CatLinkAddressError
	// CatLinkSignatureNotFound reports a missing signature file.
	CatLinkSignatureNotFound
	// CatLinkArgumentNotFound reports a signature parameter that has no
	// matching argument. Warning severity.
	CatLinkArgumentNotFound
	// CatLinkInvalidPatchType reports an invalid patch point type.
	CatLinkInvalidPatchType
	// CatControlSystemResourcesExceeded reports exhausted control-system
	// resources such as instruction memory.
	CatControlSystemResourcesExceeded
	// CatUncategorized is the catch-all compilation failure.
	CatUncategorized
)

// Description returns the human-readable cause rendered into diagnostics.
func (c Category) Description() string {
	switch c {
	case CatQASMParseFailure:
		return "OpenQASM 3 parse error"
	case CatCompilerError:
		return "Unknown compiler error"
	case CatNoInput:
		return "Error when no input file or string is provided"
	case CatCommunicationFailure:
		return "Error on compilation communication failure"
	case CatEOFFailure:
		return "EOF Error"
	case CatNonZeroStatus:
		return "Errored because non-zero status is returned"
	case CatSequenceTooLong:
		return "Input sequence is too long"
	case CatCompilationFailure:
		return "Failure during compilation"
	case CatLinkerNotImplemented:
		return "BindArguments not implemented for target"
	case CatLinkSignatureWarning:
		return "Signature file format is invalid but may be processed"
	case CatLinkSignatureError:
		return "Signature file format is invalid"
	case CatLinkAddressError:
		return "Signature address is invalid"
	case CatLinkSignatureNotFound:
		return "Signature file not found"
	case CatLinkArgumentNotFound:
		return "Parameter in signature not found in arguments"
	case CatLinkInvalidPatchType:
		return "Invalid patch point type"
	case CatControlSystemResourcesExceeded:
		return "Control system resources exceeded"
	case CatUncategorized:
		return "Compilation failure"
	}
	panic("diag: unhandled category")
}
