package domain

const (
	// ProfileFileName is the name of the optional profile file read from the working directory.
	ProfileFileName = "wafer.yaml"

	// HostPlatformName selects the platform matching the running host.
	HostPlatformName = "auto"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)
