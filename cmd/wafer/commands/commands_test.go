package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wafer/cmd/wafer/commands"
	"go.trai.ch/wafer/internal/app"
	"go.trai.ch/wafer/internal/build"
	"go.trai.ch/wafer/internal/core/domain"
)

type mockApp struct {
	buildFunc   func(ctx context.Context, opts app.ResolveOptions) error
	resolveFunc func(ctx context.Context, opts app.ResolveOptions) (domain.InvocationSpec, error)
	jsonLogs    bool
	tracing     bool
	shutdown    bool
}

func (m *mockApp) Build(ctx context.Context, opts app.ResolveOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Resolve(ctx context.Context, opts app.ResolveOptions) (domain.InvocationSpec, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return windowsSpec(), nil
}

func (m *mockApp) Platforms() []domain.Platform {
	return domain.Platforms()
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func (m *mockApp) EnableTracing() func(context.Context) error {
	m.tracing = true
	return func(context.Context) error {
		m.shutdown = true
		return nil
	}
}

func windowsSpec() domain.InvocationSpec {
	return domain.NewInvocationSpec(
		domain.PlatformWindows,
		domain.MechanismInterpreted,
		[]string{"python", "-x", "waf"},
		[]string{"distclean", "configure", "build"},
		[]domain.Flag{domain.With("os", "windows"), domain.With("driver-usart", "windows")},
	)
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ResolveOptions
		called := false

		m := &mockApp{
			buildFunc: func(_ context.Context, opts app.ResolveOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		_, err := execute(t, m, "build", "--os", "windows", "-c", "flight.yaml")
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.ResolveOptions{Platform: "windows", ConfigPath: "flight.yaml"}, captured)
	})

	t.Run("defaults to profile platform", func(t *testing.T) {
		var captured app.ResolveOptions
		m := &mockApp{
			buildFunc: func(_ context.Context, opts app.ResolveOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, m, "build")
		require.NoError(t, err)
		assert.Equal(t, app.ResolveOptions{}, captured)
	})

	t.Run("returns toolchain failure unchanged", func(t *testing.T) {
		failure := &domain.ToolchainError{ExitCode: 3}
		m := &mockApp{
			buildFunc: func(context.Context, app.ResolveOptions) error { return failure },
		}

		_, err := execute(t, m, "build")

		var tcErr *domain.ToolchainError
		require.ErrorAs(t, err, &tcErr)
		assert.Same(t, failure, tcErr)

		var usageErr *commands.UsageError
		assert.False(t, errors.As(err, &usageErr))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		m := &mockApp{
			buildFunc: func(context.Context, app.ResolveOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, m, "build", "posix")

		var usageErr *commands.UsageError
		require.ErrorAs(t, err, &usageErr)
	})
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("prints one token per line", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "resolve", "--os", "windows")
		require.NoError(t, err)
		assert.Equal(t, strings.Join(windowsSpec().Argv(), "\n")+"\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "resolve", "--json")
		require.NoError(t, err)

		var got struct {
			Platform    string   `json:"platform"`
			Mechanism   string   `json:"mechanism"`
			Argv        []string `json:"argv"`
			Fingerprint string   `json:"fingerprint"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "windows", got.Platform)
		assert.Equal(t, "interpreted", got.Mechanism)
		assert.Equal(t, windowsSpec().Argv(), got.Argv)
		assert.Equal(t, windowsSpec().Fingerprint(), got.Fingerprint)
	})

	t.Run("fingerprint", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "resolve", "--fingerprint")
		require.NoError(t, err)
		assert.Equal(t, windowsSpec().Fingerprint()+"\n", out)
	})

	t.Run("json and fingerprint are exclusive", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "resolve", "--json", "--fingerprint")

		var usageErr *commands.UsageError
		require.ErrorAs(t, err, &usageErr)
	})

	t.Run("returns resolve error", func(t *testing.T) {
		m := &mockApp{
			resolveFunc: func(context.Context, app.ResolveOptions) (domain.InvocationSpec, error) {
				_, err := domain.ParsePlatform("beos")
				return domain.InvocationSpec{}, err
			},
		}

		out, err := execute(t, m, "resolve", "--os", "beos")
		require.ErrorIs(t, err, domain.ErrUnrecognizedPlatform)
		assert.Empty(t, out)
	})
}

func TestCommands_Platforms(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, err := execute(t, &mockApp{}, "platforms")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "platforms", []byte(out))
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.True(t, strings.HasPrefix(out, "wafer version "))
}

func TestCommands_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown command": {"deploy"},
		"unknown flag":    {"build", "--target", "x"},
		"missing value":   {"resolve", "--os"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, &mockApp{}, args...)

			var usageErr *commands.UsageError
			require.ErrorAs(t, err, &usageErr)
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "--log-json", "--trace", "resolve")
	require.NoError(t, err)

	assert.True(t, m.jsonLogs)
	assert.True(t, m.tracing)
	assert.True(t, m.shutdown)
}

func TestCommands_NoTracingByDefault(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "resolve")
	require.NoError(t, err)

	assert.False(t, m.jsonLogs)
	assert.False(t, m.tracing)
}
