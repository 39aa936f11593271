package domain

// Toolchain describes the external build tool entry point.
type Toolchain struct {
	// Entry is executed directly on platforms using MechanismDirect.
	Entry string
	// Interpreter is the program and wrapper flags used on MechanismInterpreted platforms.
	Interpreter []string
	// InterpretedEntry is the script handed to Interpreter.
	InterpretedEntry string
	// Subcommands run in order before any flag.
	Subcommands []string
}

// DefaultToolchain returns the waf entry points and the distclean/configure/build sequence.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Entry:            "./waf",
		Interpreter:      []string{"python", "-x"},
		InterpretedEntry: "waf",
		Subcommands:      []string{"distclean", "configure", "build"},
	}
}

// Prefix returns the program tokens that precede the subcommands for m.
func (t Toolchain) Prefix(m Mechanism) []string {
	if m == MechanismInterpreted {
		prefix := make([]string, 0, len(t.Interpreter)+1)
		prefix = append(prefix, t.Interpreter...)
		return append(prefix, t.InterpretedEntry)
	}
	return []string{t.Entry}
}
