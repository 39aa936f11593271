package domain

// Profile holds the user-supplied adjustments to the built-in catalogue.
// The zero value is the built-in profile.
type Profile struct {
	// DefaultPlatform is used when no platform is requested explicitly.
	DefaultPlatform Platform
	// Overrides replace catalogue flags by key, in order, or append new ones.
	Overrides []Flag
	// Toolchain is the entry point description; zero fields fall back to DefaultToolchain.
	Toolchain Toolchain
}

// Catalogue returns the default catalogue for p with every override applied.
func (pr Profile) Catalogue(p Platform) Catalogue {
	c := DefaultCatalogue(p)
	for _, f := range pr.Overrides {
		c = c.Set(f)
	}
	return c
}

// ResolvedToolchain returns the toolchain with zero fields filled from DefaultToolchain.
func (pr Profile) ResolvedToolchain() Toolchain {
	tc := DefaultToolchain()
	if pr.Toolchain.Entry != "" {
		tc.Entry = pr.Toolchain.Entry
	}
	if len(pr.Toolchain.Interpreter) > 0 {
		tc.Interpreter = append([]string(nil), pr.Toolchain.Interpreter...)
	}
	if pr.Toolchain.InterpretedEntry != "" {
		tc.InterpretedEntry = pr.Toolchain.InterpretedEntry
	}
	return tc
}

// Platform returns the profile default, or PlatformPosix when none is set.
func (pr Profile) Platform() Platform {
	if pr.DefaultPlatform.Valid() {
		return pr.DefaultPlatform
	}
	return PlatformPosix
}
