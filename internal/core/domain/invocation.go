package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// InvocationSpec is the fully resolved toolchain command.
// Fields are unexported so a resolved spec cannot be changed after the fact.
type InvocationSpec struct {
	platform    Platform
	mechanism   Mechanism
	prefix      []string
	subcommands []string
	flags       []Flag
}

// NewInvocationSpec assembles a spec from its parts, copying every slice.
func NewInvocationSpec(p Platform, m Mechanism, prefix, subcommands []string, flags []Flag) InvocationSpec {
	return InvocationSpec{
		platform:    p,
		mechanism:   m,
		prefix:      append([]string(nil), prefix...),
		subcommands: append([]string(nil), subcommands...),
		flags:       append([]Flag(nil), flags...),
	}
}

// Platform returns the platform the spec was resolved for.
func (s InvocationSpec) Platform() Platform {
	return s.platform
}

// Mechanism returns how the entry point is launched.
func (s InvocationSpec) Mechanism() Mechanism {
	return s.mechanism
}

// Prefix returns the interpreter (if any) and entry point tokens.
func (s InvocationSpec) Prefix() []string {
	return append([]string(nil), s.prefix...)
}

// Subcommands returns the toolchain subcommands.
func (s InvocationSpec) Subcommands() []string {
	return append([]string(nil), s.subcommands...)
}

// Flags returns the ordered flags.
func (s InvocationSpec) Flags() []Flag {
	return append([]Flag(nil), s.flags...)
}

// Command returns the prefix followed by the subcommands, without flags.
func (s InvocationSpec) Command() []string {
	cmd := make([]string, 0, len(s.prefix)+len(s.subcommands))
	cmd = append(cmd, s.prefix...)
	return append(cmd, s.subcommands...)
}

// Argv returns the complete argument vector, program first.
func (s InvocationSpec) Argv() []string {
	argv := make([]string, 0, len(s.prefix)+len(s.subcommands)+len(s.flags))
	argv = append(argv, s.prefix...)
	argv = append(argv, s.subcommands...)
	for _, f := range s.flags {
		argv = append(argv, f.Token())
	}
	return argv
}

// Program returns the executable to start.
func (s InvocationSpec) Program() string {
	if len(s.prefix) == 0 {
		return ""
	}
	return s.prefix[0]
}

// Args returns every argument after the program.
func (s InvocationSpec) Args() []string {
	argv := s.Argv()
	if len(argv) == 0 {
		return nil
	}
	return argv[1:]
}

// Fingerprint returns a stable 16 hex digit hash of the argument vector.
func (s InvocationSpec) Fingerprint() string {
	d := xxhash.New()
	for _, arg := range s.Argv() {
		_, _ = d.WriteString(arg)
		_, _ = d.Write([]byte{0})
	}
	sum := strconv.FormatUint(d.Sum64(), 16)
	return strings.Repeat("0", 16-len(sum)) + sum
}

// String returns the argument vector joined by spaces.
func (s InvocationSpec) String() string {
	return strings.Join(s.Argv(), " ")
}
