package viewer

import "strings"

// Status is a set of independent cache-validity bits.
type Status uint8

const (
	Loaded Status = 1 << iota
	Scaled
	Drawn
)

func (s Status) Has(f Status) bool { return s&f == f }

func (s Status) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s&Loaded != 0 {
		parts = append(parts, "loaded")
	}
	if s&Scaled != 0 {
		parts = append(parts, "scaled")
	}
	if s&Drawn != 0 {
		parts = append(parts, "drawn")
	}
	return strings.Join(parts, "|")
}

// FitMode selects how the target raster size is derived.
type FitMode uint8

const (
	// Aspect scales the source by the zoom factor, ignoring the window.
	Aspect FitMode = iota
	// FullAspect fills the window on the constraining axis.
	FullAspect
	// FullStretch fills the window exactly.
	FullStretch
)

func (m FitMode) String() string {
	switch m {
	case Aspect:
		return "aspect"
	case FullAspect:
		return "full-aspect"
	case FullStretch:
		return "full-stretch"
	default:
		return "unknown"
	}
}

// ParseFitMode accepts the names produced by FitMode.String.
func ParseFitMode(s string) (FitMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aspect", "":
		return Aspect, true
	case "full-aspect", "fullaspect":
		return FullAspect, true
	case "full-stretch", "fullstretch", "stretch":
		return FullStretch, true
	}
	return Aspect, false
}
