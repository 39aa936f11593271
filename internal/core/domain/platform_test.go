package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wafer/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Platform
	}{
		{in: "posix", want: domain.PlatformPosix},
		{in: "macosx", want: domain.PlatformMacOSX},
		{in: "windows", want: domain.PlatformWindows},
		{in: "Windows", want: domain.PlatformWindows},
		{in: " posix ", want: domain.PlatformPosix},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatform_Unrecognized(t *testing.T) {
	for _, in := range []string{"", "linux", "darwin", "freertos"} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParsePlatform(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnrecognizedPlatform))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, in, zErr.Metadata()["platform"])
		})
	}
}

func TestHostPlatform(t *testing.T) {
	tests := map[string]domain.Platform{
		"linux":   domain.PlatformPosix,
		"freebsd": domain.PlatformPosix,
		"darwin":  domain.PlatformMacOSX,
		"windows": domain.PlatformWindows,
	}
	for goos, want := range tests {
		got, err := domain.HostPlatform(goos)
		require.NoError(t, err, goos)
		assert.Equal(t, want, got, goos)
	}

	_, err := domain.HostPlatform("plan9")
	require.ErrorIs(t, err, domain.ErrUnrecognizedPlatform)
}

func TestPlatform_StringRoundTrip(t *testing.T) {
	for _, p := range domain.Platforms() {
		parsed, err := domain.ParsePlatform(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
		assert.True(t, p.Valid())
	}

	var zero domain.Platform
	assert.False(t, zero.Valid())
	assert.Equal(t, "unknown", zero.String())
}

func TestPlatform_Overlay(t *testing.T) {
	tokens := func(flags []domain.Flag) []string {
		out := make([]string, len(flags))
		for i, f := range flags {
			out[i] = f.Token()
		}
		return out
	}

	assert.Equal(t,
		[]string{"--with-driver-usart=linux", "--enable-if-zmqhub"},
		tokens(domain.PlatformPosix.Overlay()))
	assert.Equal(t,
		[]string{"--with-driver-usart=linux"},
		tokens(domain.PlatformMacOSX.Overlay()))
	assert.Equal(t,
		[]string{"--with-driver-usart=windows"},
		tokens(domain.PlatformWindows.Overlay()))
	assert.Empty(t, domain.Platform(0).Overlay())
}

func TestPlatform_OverlayIsCopy(t *testing.T) {
	overlay := domain.PlatformPosix.Overlay()
	overlay[0] = domain.Enable("mutated")

	assert.Equal(t, "--with-driver-usart=linux", domain.PlatformPosix.Overlay()[0].Token())
}

func TestPlatform_Mechanism(t *testing.T) {
	assert.Equal(t, domain.MechanismDirect, domain.PlatformPosix.Mechanism())
	assert.Equal(t, domain.MechanismDirect, domain.PlatformMacOSX.Mechanism())
	assert.Equal(t, domain.MechanismInterpreted, domain.PlatformWindows.Mechanism())
	assert.Equal(t, "interpreted", domain.MechanismInterpreted.String())
	assert.Equal(t, "direct", domain.MechanismDirect.String())
}

func TestPlatform_YAML(t *testing.T) {
	type doc struct {
		OS domain.Platform `yaml:"os"`
	}

	var in doc
	require.NoError(t, yaml.Unmarshal([]byte("os: macosx\n"), &in))
	assert.Equal(t, domain.PlatformMacOSX, in.OS)

	var bad doc
	err := yaml.Unmarshal([]byte("os: beos\n"), &bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized platform")

	out, err := yaml.Marshal(doc{OS: domain.PlatformWindows})
	require.NoError(t, err)
	assert.Equal(t, "os: windows\n", string(out))
}
