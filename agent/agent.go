// Package agent answers questions about a cap table with Gemini.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const instruction = `You are an assistant to the founders of a company.
You answer questions about the company's capitalization table below, and nothing else.
Percentages are ownership of the total number of shares. Cash amounts are what each
investor paid for their shares. Be concise and show your computations when you make any.

`

// chat is the part of a genai.Chat the agent needs.
type chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w        io.Writer
	r        *bufio.Reader
	model    string
	capTable string
	chat     chat
}

// New creates a new Agent for a cap table rendered in markdown.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, model, capTable string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	return &Agent{
		w:        w,
		r:        bufio.NewReader(r),
		model:    model,
		capTable: capTable,
	}
}

// Start creates the Gemini chat, with the cap table as system instruction.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction + a.capTable}}},
	}
	c, err := client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return fmt.Errorf("could not start chat with %s: %w", a.model, err)
	}
	a.chat = c
	return nil
}

// Ask sends a single question and returns the answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", errors.New("agent is not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", a.model)
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Prompts are asked
// first, then the user is asked until "bye" or the end of input.
// client is only used if the agent was not started yet.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Ask anything about the cap table. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil // Clean exit on Ctrl+D
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
