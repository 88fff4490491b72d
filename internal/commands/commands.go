package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrUnknownCommand is returned by Execute for a name that was never registered.
var ErrUnknownCommand = errors.New("unknown command")

// BuildFunc binds a command's flags on fs and returns the function to run once fs has parsed.
type BuildFunc func(fs *flag.FlagSet) func() error

// Command is a named subcommand. Each execution gets a fresh FlagSet so flag values never
// leak from one invocation into the next.
type Command struct {
	Name  string
	Usage string
	build BuildFunc
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a line (e.g. "step").
func (r *Registry) Register(name, usage string, build BuildFunc) {
	r.cmds[name] = &Command{Name: name, Usage: usage, build: build}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Usage returns one "name: usage" line per command.
func (r *Registry) Usage() string {
	var sb strings.Builder
	for _, n := range r.Names() {
		fmt.Fprintf(&sb, "%s: %s\n", n, r.cmds[n].Usage)
	}
	return sb.String()
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// ParseScriptLine tokenizes a script line. Blank lines and # comments yield ok false.
// A leading "cmd " is accepted so console lines can be pasted into scripts.
func ParseScriptLine(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line == strings.TrimSpace(prefix) || strings.HasPrefix(line, "#") {
		return nil, false
	}
	if args, isCmd := Parse(line); isCmd {
		return args, len(args) > 0
	}
	return strings.Fields(line), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}

// RunScript executes every non-blank line in order and stops at the first failure,
// reporting its line number.
func (r *Registry) RunScript(lines []string) error {
	for i, line := range lines {
		args, ok := ParseScriptLine(line)
		if !ok {
			continue
		}
		if err := r.Execute(args); err != nil {
			return fmt.Errorf("script line %d %q: %w", i+1, strings.TrimSpace(line), err)
		}
	}
	return nil
}

// RunReader executes a script read line by line from rd.
func (r *Registry) RunReader(rd io.Reader) error {
	var lines []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return r.RunScript(lines)
}
