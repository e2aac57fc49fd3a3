// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     playground
// Description: Main Bubbletea model for the minipy playground
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package playground

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/minipy/internal/provider"
	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
)

// FocusArea represents which area has focus
type FocusArea int

const (
	FocusEditor FocusArea = iota
	FocusPrompt
)

// Model is the main Bubbletea model for the playground
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	generating bool
	showAST    bool
	focus      FocusArea

	// Components
	editor   textarea.Model
	prompt   textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Last compile result
	result       *minicompiler.Result
	lastProvider string
	lastModel    string
	lastDuration time.Duration
	lastErr      error

	// Configuration
	providers *provider.Manager
	timeout   time.Duration
}

// Config holds playground configuration
type Config struct {
	Providers *provider.Manager
	Timeout   time.Duration
	Source    string
}

// New creates a new playground model
func New(cfg Config) Model {
	// Setup editor
	ta := textarea.New()
	ta.Placeholder = "MiniPy-Code eingeben... (Ctrl+R zum Prüfen)"
	ta.Focus()
	ta.CharLimit = 8000
	ta.SetWidth(80)
	ta.SetHeight(10)
	ta.ShowLineNumbers = true
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	if cfg.Source != "" {
		ta.SetValue(cfg.Source)
	}

	// Setup prompt input
	ti := textinput.New()
	ti.Placeholder = "Beschreibung eingeben, z.B. print the sum of two numbers"
	ti.CharLimit = 500
	ti.Width = 76

	// Setup spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return Model{
		editor:    ta,
		prompt:    ti,
		spinner:   sp,
		focus:     FocusEditor,
		providers: cfg.Providers,
		timeout:   timeout,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 4
		editorHeight := 10
		viewportHeight := msg.Height - headerHeight - footerHeight - editorHeight - 4

		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.editor.SetWidth(msg.Width - 4)
		m.prompt.Width = msg.Width - 8
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.generating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case compileResultMsg:
		m.result = msg.result
		m.updateViewportContent()
		m.viewport.GotoTop()

	case generateResultMsg:
		m.generating = false
		if msg.err != nil {
			m.lastErr = msg.err
		} else {
			m.lastErr = nil
			m.lastProvider = msg.provider
			m.lastModel = msg.model
			m.lastDuration = msg.duration
			m.editor.SetValue(msg.code)
			// Check the generated code right away
			return m, m.compileCmd(msg.code)
		}
		m.updateViewportContent()
	}

	// Update components
	switch m.focus {
	case FocusEditor:
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	case FocusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Prompt mode - handle FIRST when active
	if m.focus == FocusPrompt {
		switch msg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(m.prompt.Value())
			if text == "" {
				return m, nil
			}
			m.focus = FocusEditor
			m.prompt.Blur()
			m.editor.Focus()
			m.generating = true
			m.lastErr = nil
			return m, tea.Batch(m.spinner.Tick, m.generateCmd(text))

		case tea.KeyEsc:
			m.focus = FocusEditor
			m.prompt.Blur()
			m.editor.Focus()
			return m, nil

		case tea.KeyCtrlC:
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	// Global shortcuts
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Clear editor and result
		m.editor.SetValue("")
		m.result = nil
		m.lastErr = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyCtrlR:
		return m, m.compileCmd(m.editor.Value())
	}

	switch msg.String() {
	case "ctrl+a":
		m.showAST = !m.showAST
		m.updateViewportContent()
		return m, nil

	case "ctrl+g":
		if m.providers == nil || m.generating {
			return m, nil
		}
		m.focus = FocusPrompt
		m.editor.Blur()
		m.prompt.Focus()
		m.prompt.SetValue("")
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// compileCmd runs the pipeline over the editor content
func (m Model) compileCmd(source string) tea.Cmd {
	return func() tea.Msg {
		return compileResultMsg{result: minicompiler.Compile(source)}
	}
}

// generateCmd asks the provider manager for code
func (m Model) generateCmd(prompt string) tea.Cmd {
	providers := m.providers
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		resp, err := providers.Generate(ctx, &provider.GenerateRequest{Prompt: prompt})
		if err != nil {
			return generateResultMsg{err: err, duration: time.Since(start)}
		}
		return generateResultMsg{
			code:     resp.Code,
			provider: resp.Provider,
			model:    resp.Model,
			duration: time.Since(start),
		}
	}
}

// updateViewportContent renders diagnostics into the result pane
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(SyntaxErrorStyle.Render("Generierung fehlgeschlagen: "+m.lastErr.Error()) + "\n\n")
	}

	if m.result == nil {
		b.WriteString(SubHeaderStyle.Render("Noch kein Ergebnis. Ctrl+R prüft den Code."))
		m.viewport.SetContent(b.String())
		return
	}

	if m.result.Valid() {
		b.WriteString(ValidStyle.Render("Programm ist gültig") + "\n")
	} else {
		total := len(m.result.SyntaxErrors) + len(m.result.SemanticErrors)
		b.WriteString(SyntaxErrorStyle.Render(fmt.Sprintf("%d Fehler gefunden", total)) + "\n")
	}

	for _, e := range m.result.SyntaxErrors {
		b.WriteString(SyntaxErrorStyle.Render("  [Syntax]   "+e) + "\n")
	}
	for _, e := range m.result.SemanticErrors {
		b.WriteString(SemanticErrorStyle.Render("  [Semantik] "+e) + "\n")
	}

	if m.showAST && m.result.AST != nil {
		b.WriteString("\n" + ASTStyle.Render(m.result.DumpAST()))
	}

	m.viewport.SetContent(b.String())
}

// View renders the playground
func (m Model) View() string {
	if !m.ready {
		return "Initialisiere..."
	}

	var sections []string

	// Header
	header := LogoStyle.Render(Logo)
	if m.generating {
		header += "  " + m.spinner.View() + SubHeaderStyle.Render(" generiere Code...")
	} else if m.lastProvider != "" {
		header += "  " + SubHeaderStyle.Render(fmt.Sprintf("zuletzt: %s/%s (%s)",
			m.lastProvider, m.lastModel, m.lastDuration.Round(time.Millisecond)))
	}
	sections = append(sections, header)

	// Editor
	editorStyle := EditorStyle
	if m.focus == FocusEditor {
		editorStyle = FocusedEditorStyle
	}
	sections = append(sections, editorStyle.Render(m.editor.View()))

	// Prompt input when active
	if m.focus == FocusPrompt {
		sections = append(sections, FocusedEditorStyle.Render(m.prompt.View()))
	}

	// Results
	sections = append(sections, ResultPanelStyle.Render(m.viewport.View()))

	// Help
	help := strings.Join([]string{
		RenderKeyHint("Ctrl+R", "Prüfen"),
		RenderKeyHint("Ctrl+A", "AST"),
		RenderKeyHint("Ctrl+G", "Generieren"),
		RenderKeyHint("Ctrl+L", "Leeren"),
		RenderKeyHint("Ctrl+C", "Beenden"),
	}, "  ")
	sections = append(sections, StatusBarStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the playground program
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
