package domain

// FlagKind selects how a flag is rendered on the toolchain command line.
type FlagKind uint8

const (
	// FlagEnable renders as --enable-<name>.
	FlagEnable FlagKind = iota
	// FlagDisable renders as --disable-<name>.
	FlagDisable
	// FlagValue renders as --<name>=<value>.
	FlagValue
)

// Flag is a single build option passed to the toolchain.
type Flag struct {
	Kind  FlagKind
	Name  string
	Value string
}

// Enable returns a flag that turns a feature on.
func Enable(name string) Flag {
	return Flag{Kind: FlagEnable, Name: name}
}

// Disable returns a flag that turns a feature off.
func Disable(name string) Flag {
	return Flag{Kind: FlagDisable, Name: name}
}

// With returns a --with-<name>=<value> parameter.
func With(name, value string) Flag {
	return Flag{Kind: FlagValue, Name: "with-" + name, Value: value}
}

// Option returns a bare --<name>=<value> parameter.
func Option(name, value string) Flag {
	return Flag{Kind: FlagValue, Name: name, Value: value}
}

// Key identifies the toolchain option a flag controls.
// --enable-x and --disable-x share the key "feature:x" so one overrides the other.
func (f Flag) Key() string {
	switch f.Kind {
	case FlagEnable, FlagDisable:
		return "feature:" + f.Name
	default:
		return f.Name
	}
}

// Token renders the flag as one command-line argument.
func (f Flag) Token() string {
	switch f.Kind {
	case FlagEnable:
		return "--enable-" + f.Name
	case FlagDisable:
		return "--disable-" + f.Name
	default:
		return "--" + f.Name + "=" + f.Value
	}
}

// String implements fmt.Stringer.
func (f Flag) String() string {
	return f.Token()
}
