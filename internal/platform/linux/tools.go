//go:build linux

package linux

import (
	"fmt"
)

// Command-line injection tools.
const (
	ToolXdotool = "xdotool"
	ToolYdotool = "ydotool"
)

// CommandTool injects keys by running an external tool once per event.
type CommandTool struct {
	Cmd  string
	args func(key rune, down bool) ([]string, error)
}

// NewXdotool returns a CommandTool driving xdotool (X11 only).
func NewXdotool() (*CommandTool, error) {
	if !hasCommand(ToolXdotool) {
		return nil, fmt.Errorf("%s not found in PATH", ToolXdotool)
	}
	return &CommandTool{Cmd: ToolXdotool, args: xdotoolArgs}, nil
}

// NewYdotool returns a CommandTool driving ydotool (X11 and Wayland, needs ydotoold).
func NewYdotool() (*CommandTool, error) {
	if !hasCommand(ToolYdotool) {
		return nil, fmt.Errorf("%s not found in PATH", ToolYdotool)
	}
	return &CommandTool{Cmd: ToolYdotool, args: ydotoolArgs}, nil
}

// NewTool returns the named CommandTool.
func NewTool(name string) (*CommandTool, error) {
	switch name {
	case ToolXdotool:
		return NewXdotool()
	case ToolYdotool:
		return NewYdotool()
	default:
		return nil, fmt.Errorf("unknown key tool %q", name)
	}
}

func (c *CommandTool) Name() string {
	return c.Cmd
}

func (c *CommandTool) KeyDown(key rune) error {
	return c.run(key, true)
}

func (c *CommandTool) KeyUp(key rune) error {
	return c.run(key, false)
}

func (c *CommandTool) Close() error {
	return nil
}

func (c *CommandTool) run(key rune, down bool) error {
	args, err := c.args(key, down)
	if err != nil {
		return err
	}
	if out, err := runTool(c.Cmd, args...); err != nil {
		return fmt.Errorf("%s failed: %w (output: %q)", c.Cmd, err, out)
	}
	return nil
}

func xdotoolArgs(key rune, down bool) ([]string, error) {
	sym, ok := XKeysym(key)
	if !ok {
		return nil, fmt.Errorf("no keysym for %q", key)
	}
	if down {
		return []string{"keydown", sym}, nil
	}
	return []string{"keyup", sym}, nil
}

func ydotoolArgs(key rune, down bool) ([]string, error) {
	code, ok := EvdevCode(key)
	if !ok {
		return nil, fmt.Errorf("no input event code for %q", key)
	}
	state := 0
	if down {
		state = 1
	}
	return []string{"key", fmt.Sprintf("%d:%d", code, state)}, nil
}
