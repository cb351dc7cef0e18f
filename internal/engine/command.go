package engine

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"fmtls/internal/config"
)

// Command adapts an external formatter process to the Engine interface.
// The document is written to the process on stdin and the formatted text
// read back from stdout; configuration and the optional byte range are
// passed as flags appended after Args.
type Command struct {
	Name string
	Args []string
}

// NewCommand builds a Command from an argv-style slice.
func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty formatter command")
	}
	return &Command{Name: argv[0], Args: argv[1:]}, nil
}

func (c *Command) Format(text string, cfg config.Config, rng *Range) (string, error) {
	cmd := exec.Command(c.Name, c.args(cfg, rng)...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("formatter %s: %w: %s",
			c.Name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (c *Command) args(cfg config.Config, rng *Range) []string {
	args := append([]string(nil), c.Args...)
	args = append(args,
		"--column-width", strconv.Itoa(cfg.ColumnWidth),
		"--line-endings", string(cfg.LineEndings),
		"--indent-width", strconv.Itoa(cfg.IndentWidth),
		"--indent-type", string(cfg.IndentStyle),
	)
	if rng != nil {
		args = append(args,
			"--range-start", strconv.Itoa(rng.Start),
			"--range-end", strconv.Itoa(rng.End),
		)
	}
	return args
}
