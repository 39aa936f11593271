// Package domain contains the build-profile model: platforms, flags, catalogues and
// the resolved toolchain invocation.
package domain

import "strings"

// Platform identifies the target the protocol stack is built for.
// The zero value is not a recognized platform.
type Platform uint8

const (
	// PlatformPosix targets Linux and other POSIX hosts.
	PlatformPosix Platform = iota + 1
	// PlatformMacOSX targets macOS hosts.
	PlatformMacOSX
	// PlatformWindows targets Windows hosts.
	PlatformWindows
)

// Mechanism describes how the toolchain entry point is launched.
type Mechanism uint8

const (
	// MechanismDirect runs the entry point as an executable.
	MechanismDirect Mechanism = iota
	// MechanismInterpreted runs the entry point through an interpreter wrapper.
	MechanismInterpreted
)

// String returns the mechanism name.
func (m Mechanism) String() string {
	if m == MechanismInterpreted {
		return "interpreted"
	}
	return "direct"
}

// platformRule is the per-platform overlay and invocation mechanism.
type platformRule struct {
	name      string
	overlay   []Flag
	mechanism Mechanism
}

var platformRules = map[Platform]platformRule{
	PlatformPosix: {
		name: "posix",
		overlay: []Flag{
			With("driver-usart", "linux"),
			Enable("if-zmqhub"),
		},
		mechanism: MechanismDirect,
	},
	PlatformMacOSX: {
		name: "macosx",
		overlay: []Flag{
			With("driver-usart", "linux"),
		},
		mechanism: MechanismDirect,
	},
	PlatformWindows: {
		name: "windows",
		overlay: []Flag{
			With("driver-usart", "windows"),
		},
		mechanism: MechanismInterpreted,
	},
}

// hostPlatforms maps runtime.GOOS values onto platforms.
var hostPlatforms = map[string]Platform{
	"linux":   PlatformPosix,
	"freebsd": PlatformPosix,
	"netbsd":  PlatformPosix,
	"openbsd": PlatformPosix,
	"darwin":  PlatformMacOSX,
	"windows": PlatformWindows,
}

// Platforms returns every recognized platform in declaration order.
func Platforms() []Platform {
	return []Platform{PlatformPosix, PlatformMacOSX, PlatformWindows}
}

// ParsePlatform returns the platform with the given name.
// Matching is case-insensitive; unknown names fail with ErrUnrecognizedPlatform.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Platforms() {
		if platformRules[p].name == name {
			return p, nil
		}
	}
	return 0, annotate(ErrUnrecognizedPlatform, "platform", s)
}

// HostPlatform maps a GOOS value to the platform used to build on that host.
func HostPlatform(goos string) (Platform, error) {
	p, ok := hostPlatforms[goos]
	if !ok {
		return 0, annotate(ErrUnrecognizedPlatform, "goos", goos)
	}
	return p, nil
}

// Valid reports whether p is one of the recognized platforms.
func (p Platform) Valid() bool {
	_, ok := platformRules[p]
	return ok
}

// String returns the platform name as passed to --with-os.
func (p Platform) String() string {
	if rule, ok := platformRules[p]; ok {
		return rule.name
	}
	return "unknown"
}

// Overlay returns the flags appended after the base catalogue for p.
// Unrecognized platforms have no overlay.
func (p Platform) Overlay() []Flag {
	rule, ok := platformRules[p]
	if !ok {
		return nil
	}
	overlay := make([]Flag, len(rule.overlay))
	copy(overlay, rule.overlay)
	return overlay
}

// Mechanism returns how the toolchain is launched on p.
func (p Platform) Mechanism() Mechanism {
	return platformRules[p].mechanism
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, annotate(ErrUnrecognizedPlatform, "platform", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
