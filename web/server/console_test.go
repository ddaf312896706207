package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConsoleHandler_BasicLogging(t *testing.T) {
	console := NewConsoleLog(10)
	logger := slog.New(NewConsoleHandler(console, slog.LevelInfo, nil))

	logger.Info("render complete", "scene", "default", "pixels", 42)

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != "render complete scene=default pixels=42" {
		t.Errorf("Unexpected message %q", msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestConsoleHandler_Levels(t *testing.T) {
	console := NewConsoleLog(10)
	logger := slog.New(NewConsoleHandler(console, slog.LevelInfo, nil))

	logger.Debug("hidden")
	logger.Warn("unknown shape type", "type", "torus")
	logger.Error("failed")

	messages := console.Messages()
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %v", len(messages), messages)
	}
	if messages[0].Level != "warning" || messages[1].Level != "error" {
		t.Errorf("Unexpected levels %q, %q", messages[0].Level, messages[1].Level)
	}
}

func TestConsoleHandler_ForwardsToNext(t *testing.T) {
	var out bytes.Buffer
	next := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	console := NewConsoleLog(10)
	logger := slog.New(NewConsoleHandler(console, slog.LevelInfo, next)).With("render", "r1")

	logger.Debug("worker layout", "workers", 4)
	logger.Info("render started")

	if got := len(console.Messages()); got != 1 {
		t.Errorf("Expected only the info record in the console, got %d", got)
	}
	if msg := console.Messages()[0].Message; msg != "render started render=r1" {
		t.Errorf("Expected attrs from With, got %q", msg)
	}
	text := out.String()
	if !strings.Contains(text, "worker layout") || !strings.Contains(text, "render started") {
		t.Errorf("Expected both records forwarded, got %q", text)
	}
	if !strings.Contains(text, "render=r1") {
		t.Errorf("Expected forwarded attrs, got %q", text)
	}
}

func TestConsoleLog_DropsOldest(t *testing.T) {
	console := NewConsoleLog(3)
	for i := 1; i <= 5; i++ {
		console.Add(ConsoleMessage{Message: fmt.Sprintf("Message %d", i)})
	}

	messages := console.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"Message 3", "Message 4", "Message 5"} {
		if messages[i].Message != want {
			t.Errorf("Message %d: expected %q, got %q", i, want, messages[i].Message)
		}
	}

	// Returned slice is a copy
	messages[0].Message = "changed"
	if console.Messages()[0].Message != "Message 3" {
		t.Error("Messages should return a copy")
	}
}
