package domain_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wafer/internal/core/domain"
)

func newSpec() domain.InvocationSpec {
	return domain.NewInvocationSpec(
		domain.PlatformWindows,
		domain.MechanismInterpreted,
		[]string{"python", "-x", "waf"},
		[]string{"distclean", "configure", "build"},
		[]domain.Flag{domain.With("os", "windows"), domain.Enable("rdp")},
	)
}

func TestInvocationSpec_Argv(t *testing.T) {
	spec := newSpec()

	assert.Equal(t, []string{
		"python", "-x", "waf",
		"distclean", "configure", "build",
		"--with-os=windows", "--enable-rdp",
	}, spec.Argv())
	assert.Equal(t, "python", spec.Program())
	assert.Equal(t, spec.Argv()[1:], spec.Args())
	assert.Equal(t, []string{"python", "-x", "waf", "distclean", "configure", "build"}, spec.Command())
	assert.Equal(t, "python -x waf distclean configure build --with-os=windows --enable-rdp", spec.String())
	assert.Equal(t, domain.PlatformWindows, spec.Platform())
	assert.Equal(t, domain.MechanismInterpreted, spec.Mechanism())
}

func TestInvocationSpec_Immutable(t *testing.T) {
	prefix := []string{"./waf"}
	flags := []domain.Flag{domain.Enable("qos")}
	spec := domain.NewInvocationSpec(domain.PlatformPosix, domain.MechanismDirect, prefix, nil, flags)

	prefix[0] = "rm"
	flags[0] = domain.Disable("qos")
	argv := spec.Argv()
	argv[0] = "sh"

	assert.Equal(t, []string{"./waf", "--enable-qos"}, spec.Argv())
	assert.Equal(t, []string{"./waf"}, spec.Prefix())
	assert.Empty(t, spec.Subcommands())
	assert.Equal(t, "--enable-qos", spec.Flags()[0].Token())
}

func TestInvocationSpec_Fingerprint(t *testing.T) {
	a := newSpec()
	b := newSpec()

	assert.Len(t, a.Fingerprint(), 16)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	other := domain.NewInvocationSpec(
		domain.PlatformWindows,
		domain.MechanismInterpreted,
		[]string{"python", "-x", "waf"},
		[]string{"distclean", "configure", "build"},
		[]domain.Flag{domain.Enable("rdp"), domain.With("os", "windows")},
	)
	assert.NotEqual(t, a.Fingerprint(), other.Fingerprint(), "order must change the fingerprint")

	// Token boundaries are part of the hash.
	joined := domain.NewInvocationSpec(domain.PlatformPosix, domain.MechanismDirect, []string{"ab"}, []string{"c"}, nil)
	split := domain.NewInvocationSpec(domain.PlatformPosix, domain.MechanismDirect, []string{"a"}, []string{"bc"}, nil)
	assert.NotEqual(t, joined.Fingerprint(), split.Fingerprint())
}

func TestInvocationSpec_Empty(t *testing.T) {
	var spec domain.InvocationSpec

	assert.Empty(t, spec.Program())
	assert.Nil(t, spec.Args())
	assert.Empty(t, spec.Argv())
}

func TestToolchain_Prefix(t *testing.T) {
	tc := domain.DefaultToolchain()

	assert.Equal(t, []string{"./waf"}, tc.Prefix(domain.MechanismDirect))
	assert.Equal(t, []string{"python", "-x", "waf"}, tc.Prefix(domain.MechanismInterpreted))
	assert.Equal(t, []string{"python", "-x"}, tc.Interpreter, "prefix must not grow the interpreter slice")
}

func TestToolchainError(t *testing.T) {
	cause := errors.New("exit status 2")
	err := error(&domain.ToolchainError{ExitCode: 2, Err: cause})

	assert.Equal(t, "toolchain exited with status 2", err.Error())
	assert.ErrorIs(t, err, domain.ErrToolchainFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrSpawnFailed)

	var tcErr *domain.ToolchainError
	require.ErrorAs(t, err, &tcErr)
	assert.Equal(t, 2, tcErr.ExitCode)

	assert.ErrorIs(t, &domain.ToolchainError{ExitCode: 1}, domain.ErrToolchainFailed)
}

func TestSpawnError(t *testing.T) {
	err := error(&domain.SpawnError{Program: "./waf", Err: exec.ErrNotFound})

	assert.ErrorIs(t, err, domain.ErrSpawnFailed)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrToolchainFailed)
	assert.Contains(t, err.Error(), `"./waf"`)
	assert.Equal(t, `failed to start toolchain "./waf"`, (&domain.SpawnError{Program: "./waf"}).Error())
}
