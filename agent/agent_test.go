package agent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// echoChat answers every question by echoing it.
type echoChat struct {
	questions []string
	err       error
}

func (e *echoChat) Send(_ context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.questions = append(e.questions, parts[0].Text)
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "echo: "}, {Text: parts[0].Text}}}},
		},
	}, nil
}

func TestAgent_Run(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader("who owns most?\n\nbye\nnever asked\n"), "", "# Cap Table")
	chat := &echoChat{}
	a.chat = chat

	if err := a.Run(context.Background(), nil, "total shares?", "  "); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	want := []string{"total shares?", "who owns most?"}
	if strings.Join(chat.questions, "|") != strings.Join(want, "|") {
		t.Errorf("questions = %q, want %q", chat.questions, want)
	}
	if !strings.Contains(out.String(), "echo: who owns most?") {
		t.Errorf("output does not contain the answer:\n%s", out.String())
	}
	if a.model != DefaultModel {
		t.Errorf("model = %q, want %q", a.model, DefaultModel)
	}
}

func TestAgent_RunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader("last question"), "gemini-test", "")
	chat := &echoChat{}
	a.chat = chat

	if err := a.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	if len(chat.questions) != 1 || chat.questions[0] != "last question" {
		t.Errorf("questions = %q, want [last question]", chat.questions)
	}
}

func TestAgent_AskErrors(t *testing.T) {
	a := New(&bytes.Buffer{}, strings.NewReader(""), "", "")
	if _, err := a.Ask(context.Background(), "hello"); err == nil {
		t.Error("Ask() expected an error on a non started agent, but got nil")
	}

	boom := errors.New("boom")
	a.chat = &echoChat{err: boom}
	if _, err := a.Ask(context.Background(), "hello"); !errors.Is(err, boom) {
		t.Errorf("Ask() error = %v, want %v", err, boom)
	}
}
