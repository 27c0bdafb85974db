package main

import (
	"strings"
	"testing"
)

func TestConsoleExecDispatch(t *testing.T) {
	c := NewConsole()

	var gotArgs []string
	c.Register("echoargs", "test command", func(args []string) {
		gotArgs = args
	})

	c.Exec("echoargs one two")

	if len(gotArgs) != 2 || gotArgs[0] != "one" || gotArgs[1] != "two" {
		t.Errorf("args: %v, want [one two]", gotArgs)
	}

	if !strings.Contains(c.ScrollbackText(), "> echoargs one two") {
		t.Errorf("command not echoed: %q", c.ScrollbackText())
	}
}

func TestConsoleUnknownCommand(t *testing.T) {
	c := NewConsole()

	c.Exec("frobnicate")

	if !strings.Contains(c.ScrollbackText(), `unknown command "frobnicate"`) {
		t.Errorf("no unknown-command message: %q", c.ScrollbackText())
	}
}

func TestConsoleEmptyLineIsIgnored(t *testing.T) {
	c := NewConsole()

	c.Exec("   ")

	if c.Scrollback.Length != 0 {
		t.Errorf("blank line produced output: %q", c.ScrollbackText())
	}
}

func TestConsoleClear(t *testing.T) {
	c := NewConsole()

	c.Println("a")
	c.Println("b")
	c.Exec("clear")

	if c.Scrollback.Length != 0 {
		t.Errorf("scrollback not cleared: %q", c.ScrollbackText())
	}
}

func TestConsoleHelpListsRegisteredCommands(t *testing.T) {
	c := NewConsole()
	c.Register("testcmd", "test command", func(args []string) {})

	c.Exec("help")

	text := c.ScrollbackText()
	for _, want := range []string{"help", "clear", "copy", "colors", "testcmd"} {
		if !strings.Contains(text, want) {
			t.Errorf("help output missing %q:\n%s", want, text)
		}
	}
}

func TestConsoleColorsDumpsWholeTable(t *testing.T) {
	c := NewConsole()

	c.Exec("colors")

	text := c.ScrollbackText()
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		if !strings.Contains(text, i.String()) {
			t.Errorf("colors output missing %q", i.String())
		}
	}
}

func TestConsoleShowFade(t *testing.T) {
	c := NewConsole()

	if got := c.ShowTimer.Normalize(); got != 0 {
		t.Fatalf("fresh console fade: %v, want 0", got)
	}

	ticks := int(consoleShowDuration/UpdateDelta()) + 1

	c.DoShow = true
	c.Update()
	if got := c.ShowTimer.Normalize(); got <= 0 {
		t.Error("fade-in did not start")
	}
	for i := 0; i < ticks; i++ {
		c.Update()
	}
	if got := c.ShowTimer.Normalize(); got != 1 {
		t.Errorf("fade-in never finished: %v", got)
	}

	c.DoShow = false
	c.Update()
	if got := c.ShowTimer.Normalize(); got >= 1 {
		t.Error("fade-out did not start")
	}
	for i := 0; i < ticks; i++ {
		c.Update()
	}
	if got := c.ShowTimer.Normalize(); got != 0 {
		t.Errorf("fade-out never finished: %v", got)
	}
}

func TestConsoleScrollbackWraps(t *testing.T) {
	c := NewConsole()

	for i := 0; i < consoleScrollbackSize+10; i++ {
		c.Printf("line %d", i)
	}

	if c.Scrollback.Length != consoleScrollbackSize {
		t.Fatalf("scrollback length %d, want %d",
			c.Scrollback.Length, consoleScrollbackSize)
	}

	if got := c.Scrollback.PeekFirst(); got != "line 10" {
		t.Errorf("oldest line: %q, want \"line 10\"", got)
	}
	if got := c.Scrollback.PeekLast(); got != "line 265" {
		t.Errorf("newest line: %q, want \"line 265\"", got)
	}
}
