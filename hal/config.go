package hal

// HostConfig sizes the host framebuffer and picks the logger.
type HostConfig struct {
	Width  int
	Height int
	// RowAlign rounds framebuffer rows up to a multiple of this many bytes.
	RowAlign int
	Logger   Logger
}

// WindowConfig places and titles the desktop window.
type WindowConfig struct {
	HostConfig
	Title       string
	X, Y        int
	SetPosition bool
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
	// Snapshot, if set, receives the framebuffer as PNG when the run ends.
	Snapshot string
}
