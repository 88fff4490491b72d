package terminal

import (
	"flag"
	"strings"
	"testing"

	"rigid-kernel/internal/commands"
	"rigid-kernel/internal/logger"
)

func TestSubmit(t *testing.T) {
	log := logger.New("")
	reg := commands.NewRegistry()
	calls := 0
	reg.Register("ping", "", func(fs *flag.FlagSet) func() error {
		return func() error {
			calls++
			log.Log("pong")
			return nil
		}
	})
	term := New(log, reg)

	term.Submit("just a note")
	term.Submit("cmd ping")
	term.Submit("cmd nope")
	term.Submit("cmd ")

	if calls != 1 {
		t.Errorf("ping ran %d times", calls)
	}
	got := strings.Join(log.Lines(), "\n")
	for _, want := range []string{"> just a note", "pong", "unknown command: nope", "ping: "} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
}

func TestRecall(t *testing.T) {
	term := New(logger.New(""), commands.NewRegistry())
	if got := term.Recall(-1); got != "" {
		t.Errorf("empty history recall = %q", got)
	}
	term.Submit("a")
	term.Submit("b")
	term.Submit("b")
	term.Submit("c")

	steps := []struct {
		delta int
		want  string
	}{
		{-1, "c"},
		{-1, "b"},
		{-1, "a"},
		{-1, "a"},
		{1, "b"},
		{1, "c"},
		{1, ""},
		{1, ""},
	}
	for i, s := range steps {
		if got := term.Recall(s.delta); got != s.want {
			t.Errorf("step %d: Recall(%d) = %q, want %q", i, s.delta, got, s.want)
		}
	}
}
