package conversation

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipebook/internal/logger"
)

func TestLineConsoleReadLine(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader("Toast\r\n\nlast"), &out)

	want := []string{"Toast", "", "last"}
	for i, w := range want {
		got, err := c.ReadLine(ctx)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}

	if _, err := c.ReadLine(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after input is exhausted, got %v", err)
	}
}

func TestLineConsoleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewLineConsole(strings.NewReader("1\n"), io.Discard)
	if _, err := c.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLineConsoleWrites(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out)

	c.Println("1. Enter recipe")
	c.Printf("Recipe: %s", "Toast")

	want := "1. Enter recipe\nRecipe: Toast\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestCLINotifier(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out)
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), c.Printf)
	ctx := context.Background()

	if err := n.NotifyUrgent(ctx, "Warning: Total calories exceed 300!"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}
	if err := n.Notify(ctx, "saved"); err != nil {
		t.Fatalf("notify: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Warning: Total calories exceed 300!") {
		t.Fatalf("urgent message missing from %q", got)
	}
	if !strings.Contains(got, "saved") {
		t.Fatalf("message missing from %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("expected two lines, got %q", got)
	}
}
