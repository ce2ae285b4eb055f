package viewer

import "fmt"

// CommandKind identifies a logical input command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdResize
	CmdPan
	CmdZoom
	CmdSetZoom
	CmdSetFitMode
	CmdReset
	CmdResetPan
	CmdInvalidateDraw
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:           "none",
	CmdResize:         "resize",
	CmdPan:            "pan",
	CmdZoom:           "zoom",
	CmdSetZoom:        "set-zoom",
	CmdSetFitMode:     "set-fit-mode",
	CmdReset:          "reset",
	CmdResetPan:       "reset-pan",
	CmdInvalidateDraw: "invalidate-draw",
	CmdQuit:           "quit",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", uint8(k))
}

// Command is a decoded input event. X and Y carry the size for CmdResize
// and the motion for CmdPan; Factor carries the zoom delta or value.
type Command struct {
	Kind   CommandKind
	X, Y   int
	Factor float64
	Mode   FitMode
}

func (c Command) String() string {
	switch c.Kind {
	case CmdResize, CmdPan:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.X, c.Y)
	case CmdZoom, CmdSetZoom:
		return fmt.Sprintf("%s(%g)", c.Kind, c.Factor)
	case CmdSetFitMode:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Mode)
	default:
		return c.Kind.String()
	}
}

// Apply runs the handler for c.
func (v *Viewer) Apply(c Command) Outcome {
	switch c.Kind {
	case CmdResize:
		return v.Resize(c.X, c.Y)
	case CmdPan:
		return v.Pan(c.X, c.Y)
	case CmdZoom:
		return v.IncrementZoom(c.Factor)
	case CmdSetZoom:
		return v.SetZoom(c.Factor)
	case CmdSetFitMode:
		return v.SetFitMode(c.Mode)
	case CmdReset:
		return v.Reset()
	case CmdResetPan:
		return v.ResetPan()
	case CmdInvalidateDraw:
		return v.InvalidateDraw()
	case CmdQuit:
		return Outcome{Quit: true}
	}
	return Outcome{}
}

// ApplyAll runs cmds in order and merges their outcomes. It stops after a
// quit command.
func (v *Viewer) ApplyAll(cmds []Command) Outcome {
	var out Outcome
	for _, c := range cmds {
		out = out.merge(v.Apply(c))
		if out.Quit {
			break
		}
	}
	return out
}
