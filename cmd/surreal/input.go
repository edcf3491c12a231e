// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// This file defines the InputReader abstraction behind the interactive
// prompt loops. Terminals get a bubbletea line editor with history; piped
// input falls back to plain buffered reads so the demos stay scriptable.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/AleutianAI/surreal/pkg/ux"
)

// =============================================================================
// InputReader Interface
// =============================================================================

// InputReader abstracts reading lines of user input.
//
// # Description
//
// The prompt loops only need one operation: read the next line. Keeping
// that behind an interface lets the same loop run against a terminal,
// piped stdin, or a predetermined script in tests.
//
// # Outputs
//
// ReadLine returns the next line with surrounding whitespace trimmed,
// or io.EOF when input is exhausted (Ctrl+D, end of pipe, or an empty
// mock). Any other error means the underlying read failed.
type InputReader interface {
	ReadLine() (string, error)
}

// PromptingInputReader is an InputReader that renders its own prompt.
//
// # Description
//
// The interactive reader draws the prompt as part of its line editor,
// so the caller must not print one of its own. promptLine checks for
// this interface to decide who displays the prompt.
type PromptingInputReader interface {
	InputReader

	// SetPrompt sets the prompt string shown before input.
	SetPrompt(prompt string)
}

// promptLine displays prompt and reads one line from reader.
//
// Readers that render their own prompt get it via SetPrompt; for the
// rest the prompt is written to stdout first.
func promptLine(reader InputReader, prompt string) (string, error) {
	if pr, ok := reader.(PromptingInputReader); ok {
		pr.SetPrompt(prompt)
	} else {
		fmt.Print(prompt)
	}
	return reader.ReadLine()
}

// confirm asks a yes/no question and reads the answer.
//
// Returns true only for "y" or "yes" in any case. Machine personality
// declines without prompting, keeping scripted output free of prompt
// text; io.EOF and read errors also count as no, so piped input that
// runs dry declines cleanly.
func confirm(reader InputReader, question string) bool {
	if ux.GetPersonality().Level == ux.PersonalityMachine {
		return false
	}
	answer, err := promptLine(reader, question+" (y/n) ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// =============================================================================
// StdinReader Implementation
// =============================================================================

// StdinReader reads lines from standard input.
//
// # Description
//
// The plain fallback used for piped input and non-TTY environments.
// No history, no editing, just buffered line reads.
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a reader over os.Stdin.
func NewStdinReader() *StdinReader {
	return &StdinReader{
		reader: bufio.NewReader(os.Stdin),
	}
}

// ReadLine reads a single line, trimming surrounding whitespace.
//
// Returns io.EOF when stdin is exhausted. A final unterminated line is
// still returned before EOF is reported on the next call.
func (r *StdinReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// =============================================================================
// InteractiveInputReader Implementation
// =============================================================================

// InteractiveInputReader provides line editing with input history.
//
// # Description
//
// Wraps a bubbletea text input so the prompt loops get cursor movement,
// up/down history navigation, and Ctrl+D as EOF. Created through
// NewInteractiveInputReader, which falls back to a StdinReader when
// stdin is not a terminal.
//
// # Thread Safety
//
// Not thread-safe. ReadLine runs a bubbletea program that owns the
// terminal until the line is submitted.
type InteractiveInputReader struct {
	history      []string
	historyIndex int
	maxHistory   int
	prompt       string
}

// inputModel is the bubbletea model for interactive input.
type inputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int
	currentInput string // Stores current input when navigating history
	done         bool
	cancelled    bool
}

// NewInteractiveInputReader creates an interactive input reader.
//
// # Description
//
// Returns an InteractiveInputReader when stdin is a TTY, and a plain
// StdinReader otherwise (piped input, CI). The reader keeps at most
// maxHistory entries of history, navigated with the arrow keys.
//
// # Examples
//
//	reader := NewInteractiveInputReader(50)
//	for {
//	    line, err := promptLine(reader, "> ")
//	    if err == io.EOF {
//	        break
//	    }
//	    // use line
//	}
func NewInteractiveInputReader(maxHistory int) InputReader {
	// Fall back to basic stdin reader for non-TTY (piped input, CI)
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewStdinReader()
	}

	return &InteractiveInputReader{
		history:      make([]string, 0, maxHistory),
		historyIndex: -1,
		maxHistory:   maxHistory,
		prompt:       "> ",
	}
}

// SetPrompt sets the prompt string rendered by the line editor.
func (r *InteractiveInputReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

// ReadLine reads one line with editing and history support.
//
// # Description
//
// Runs a bubbletea program until the line is submitted:
//   - Enter submits the input
//   - Up/Down navigate history
//   - Ctrl+C clears the current input
//   - Ctrl+D returns io.EOF
//
// Submitted non-empty lines are added to history.
func (r *InteractiveInputReader) ReadLine() (string, error) {
	ti := textinput.New()
	ti.Prompt = r.prompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	m := inputModel{
		textInput:    ti,
		history:      r.history,
		historyIndex: -1,
	}

	// Render on stderr so stdout stays parseable when redirected.
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", finalModel)
	}

	// Ctrl+D on an empty line is EOF
	if result.cancelled && result.textInput.Value() == "" {
		return "", io.EOF
	}

	input := strings.TrimSpace(result.textInput.Value())
	if input != "" {
		r.addToHistory(input)
	}
	return input, nil
}

// addToHistory appends input to the history buffer.
func (r *InteractiveInputReader) addToHistory(input string) {
	// Skip duplicates of the most recent entry
	if len(r.history) > 0 && r.history[len(r.history)-1] == input {
		return
	}

	r.history = append(r.history, input)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}

// Init initializes the bubbletea model.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events for the bubbletea model.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			// Clear input and return empty
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			m.cancelled = true
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) == 0 {
				return m, nil
			}
			// Save current input when first entering history
			if m.historyIndex == -1 {
				m.currentInput = m.textInput.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textInput.SetValue(m.history[m.historyIndex])
			m.textInput.CursorEnd()
			return m, nil

		case tea.KeyDown:
			if m.historyIndex == -1 {
				return m, nil
			}
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.textInput.SetValue(m.history[m.historyIndex])
			} else {
				// Back past the newest entry restores the unsent input
				m.historyIndex = -1
				m.textInput.SetValue(m.currentInput)
			}
			m.textInput.CursorEnd()
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the input prompt.
func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.textInput.View()
}

// =============================================================================
// MockInputReader Implementation (for testing)
// =============================================================================

// MockInputReader returns predetermined inputs for tests.
//
// # Description
//
// Each ReadLine call returns the next scripted input; once they are
// consumed, further calls return io.EOF. Not thread-safe, which is fine
// for the single-threaded prompt loops under test.
type MockInputReader struct {
	inputs []string
	index  int
}

// NewMockInputReader creates a MockInputReader over the given inputs.
func NewMockInputReader(inputs []string) *MockInputReader {
	return &MockInputReader{inputs: inputs}
}

// ReadLine returns the next scripted input, then io.EOF.
func (m *MockInputReader) ReadLine() (string, error) {
	if m.index >= len(m.inputs) {
		return "", io.EOF
	}
	line := m.inputs[m.index]
	m.index++
	return line, nil
}
