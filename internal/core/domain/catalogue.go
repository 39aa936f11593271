package domain

// Catalogue keys that callers override by name.
const (
	KeyPort      = "with-port"
	KeyAppSrc    = "app-src"
	KeyBuildName = "with-build-name"
	KeyOS        = "with-os"
	KeyLogLevel  = "with-loglevel"
	KeyRTable    = "with-rtable"
)

// Catalogue is an ordered, immutable list of base build flags.
// Later flags win in the toolchain, so order is preserved exactly.
type Catalogue struct {
	flags []Flag
}

// NewCatalogue returns a catalogue holding a copy of flags.
func NewCatalogue(flags ...Flag) Catalogue {
	c := Catalogue{flags: make([]Flag, len(flags))}
	copy(c.flags, flags)
	return c
}

// DefaultCatalogue returns the base flags shared by every platform,
// with --with-os set to p.
func DefaultCatalogue(p Platform) Catalogue {
	return NewCatalogue(
		// SFSF
		With("port", "linux"),
		Option("app-src", "examples/linux/app"),
		With("build-name", "sfsf_example"),
		Enable("ground-station"),

		// CSP
		With("os", p.String()),
		Enable("rdp"),
		Enable("promisc"),
		Enable("crc32"),
		Enable("hmac"),
		Enable("xtea"),
		Enable("dedup"),
		With("loglevel", "debug"),
		Enable("debug-timestamp"),
		Enable("qos"),
		With("rtable", "cidr"),
		Disable("stlib"),
		Enable("python3-bindings"),
	)
}

// Flags returns a copy of the catalogue flags in order.
func (c Catalogue) Flags() []Flag {
	flags := make([]Flag, len(c.flags))
	copy(flags, c.flags)
	return flags
}

// Len returns the number of flags.
func (c Catalogue) Len() int {
	return len(c.flags)
}

// Lookup returns the flag controlling key, if present.
func (c Catalogue) Lookup(key string) (Flag, bool) {
	for _, f := range c.flags {
		if f.Key() == key {
			return f, true
		}
	}
	return Flag{}, false
}

// Set returns a copy of c with f replacing the flag of the same key in place.
// Flags with a new key are appended.
func (c Catalogue) Set(f Flag) Catalogue {
	next := c.Flags()
	for i := range next {
		if next[i].Key() == f.Key() {
			next[i] = f
			return Catalogue{flags: next}
		}
	}
	return Catalogue{flags: append(next, f)}
}

// SetValue replaces the value of the parameter named key, keeping its position.
// Missing keys are appended as --<key>=<value>.
func (c Catalogue) SetValue(key, value string) Catalogue {
	return c.Set(Option(key, value))
}
