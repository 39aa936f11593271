package ports

import "go.trai.ch/wafer/internal/core/domain"

// ProfileLoader defines the interface for loading the build profile.
//
//go:generate mockgen -source=profile_loader.go -destination=mocks/mock_profile_loader.go -package=mocks
type ProfileLoader interface {
	// Load reads the profile from the given working directory.
	// A missing profile file yields the built-in profile, not an error.
	Load(cwd string) (domain.Profile, error)
	// LoadFile reads the profile at an explicit path. A missing file is an error.
	LoadFile(path string) (domain.Profile, error)
}
