package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"lel/hal"
)

// guardStep turns a panic inside step into a logged error so the host loop
// shuts down cleanly instead of tearing the window down mid-frame.
func guardStep(l hal.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if l != nil {
				l.WriteLineString(fmt.Sprintf("lel panic: %v", v))
				for _, line := range strings.Split(string(debug.Stack()), "\n") {
					if line == "" {
						continue
					}
					l.WriteLineString(line)
				}
			}
			err = fmt.Errorf("lel: panic: %v", v)
		}()
		return step()
	}
}
