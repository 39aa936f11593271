// Package config loads the optional wafer.yaml build profile.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/wafer/internal/core/domain"
	"go.trai.ch/wafer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProfileLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a Loader for domain.ProfileFileName.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: domain.ProfileFileName,
		logger:   logger,
	}
}

var _ ports.ProfileLoader = (*Loader)(nil)

// Load reads the profile file from cwd. The directory is not searched upwards.
// A missing file yields the built-in profile.
func (l *Loader) Load(cwd string) (domain.Profile, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the working directory profile
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	return l.parse(path, data)
}

// LoadFile reads the profile at path. Unlike Load, a missing file is an error.
func (l *Loader) LoadFile(path string) (domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Profile{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	return l.parse(path, data)
}

func (l *Loader) parse(path string, data []byte) (domain.Profile, error) {
	var file Profilefile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Profile{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion && l.logger != nil {
		l.logger.Warn("unsupported profile version, reading it as version "+SupportedVersion,
			"path", path, "version", file.Version)
	}

	profile, err := toProfile(&file)
	if err != nil {
		return domain.Profile{}, zerr.With(err, "path", path)
	}
	return profile, nil
}

// toProfile converts the file representation into the domain profile.
// Scalar keys are applied before the flags list.
func toProfile(file *Profilefile) (domain.Profile, error) {
	var profile domain.Profile

	switch name := strings.TrimSpace(file.OS); {
	case name == "":
	case strings.EqualFold(name, domain.HostPlatformName):
		p, err := domain.HostPlatform(runtime.GOOS)
		if err != nil {
			return domain.Profile{}, err
		}
		profile.DefaultPlatform = p
	default:
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return domain.Profile{}, err
		}
		profile.DefaultPlatform = p
	}

	scalars := []struct {
		value string
		flag  func(string) domain.Flag
	}{
		{file.Port, func(v string) domain.Flag { return domain.With("port", v) }},
		{file.AppSrc, func(v string) domain.Flag { return domain.Option("app-src", v) }},
		{file.BuildName, func(v string) domain.Flag { return domain.With("build-name", v) }},
		{file.LogLevel, func(v string) domain.Flag { return domain.With("loglevel", v) }},
		{file.RTable, func(v string) domain.Flag { return domain.With("rtable", v) }},
	}
	for _, s := range scalars {
		if s.value != "" {
			profile.Overrides = append(profile.Overrides, s.flag(s.value))
		}
	}

	for i, dto := range file.Flags {
		f, err := toFlag(dto)
		if err != nil {
			return domain.Profile{}, zerr.With(err, "index", i)
		}
		profile.Overrides = append(profile.Overrides, f)
	}

	tc, err := toToolchain(file.Toolchain)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Toolchain = tc

	return profile, nil
}

func toFlag(dto FlagDTO) (domain.Flag, error) {
	var (
		flags []domain.Flag
		bad   bool
	)

	if dto.Enable != "" {
		flags = append(flags, domain.Enable(dto.Enable))
	}
	if dto.Disable != "" {
		flags = append(flags, domain.Disable(dto.Disable))
	}
	if dto.With != nil {
		bad = bad || dto.With.Name == ""
		flags = append(flags, domain.With(strings.TrimPrefix(dto.With.Name, "with-"), dto.With.Value))
	}
	if dto.Option != nil {
		bad = bad || dto.Option.Name == ""
		flags = append(flags, domain.Option(dto.Option.Name, dto.Option.Value))
	}

	if len(flags) != 1 || bad {
		return domain.Flag{}, zerr.Wrap(domain.ErrInvalidFlag, "")
	}
	return flags[0], nil
}

func toToolchain(dto ToolchainDTO) (domain.Toolchain, error) {
	for _, arg := range dto.Interpreter {
		if strings.TrimSpace(arg) == "" {
			return domain.Toolchain{}, zerr.With(zerr.Wrap(domain.ErrInvalidToolchain, ""), "interpreter", dto.Interpreter)
		}
	}

	return domain.Toolchain{
		Entry:            dto.Entry,
		Interpreter:      dto.Interpreter,
		InterpretedEntry: dto.InterpretedEntry,
	}, nil
}
