package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "scrawl")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initialModel(config *Config) model {
	m := model{
		history: NewStrokeHistory(len(config.Palette)),
		palette: config.Palette,
		mode:    ModeNormal,
		config:  config,
	}
	if config.Restore {
		h, err := loadHistory(config.StatePath(), len(config.Palette))
		m.history = h
		if err != nil {
			m.errorMessage = fmt.Sprintf("Could not restore drawing, starting empty: %v", err)
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help {
			return m, nil
		}
		if ev, ok := m.mouseEvent(msg); ok {
			m.history.HandleInput(ev)
			m.cursorX, m.cursorY = msg.X, msg.Y
			m.ensureCursorInBounds()
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if m.help {
			switch key {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		if m.mode == ModeConfirm {
			return m.handleConfirm(key)
		}
		return m.handleKey(key)
	}
	return m, nil
}

func (m *model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "q", "ctrl+c":
		if err := m.saveState(); err != nil {
			m.errorMessage = fmt.Sprintf("Save failed: %v", err)
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "u", "ctrl+z":
		m.undo()
	case "r", "U", "ctrl+y":
		m.redo()
	case "c":
		m.history.ChangeColor()
		m.successMessage = "Color: " + m.palette.Name(m.history.ColorIndex())
	case " ", "enter":
		m.togglePen()
	case "x":
		if !m.history.CanUndo() {
			m.errorMessage = "Nothing to clear"
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			return m, nil
		}
		m.clearAll()
	case "s":
		if err := m.saveState(); err != nil {
			m.errorMessage = fmt.Sprintf("Save failed: %v", err)
		} else {
			m.successMessage = "Saved to " + m.config.StatePath()
		}
	case "e":
		m.exportPath = m.config.GetSavePath(defaultExportFile)
		if _, err := os.Stat(m.exportPath); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteExport
			return m, nil
		}
		m.finishExport()
	case "y":
		if err := m.copySnapshot(); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Snapshot copied to clipboard"
		}
	case "p":
		if err := m.pasteSnapshot(); err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("Pasted %d strokes", m.history.Cursor())
		}
	default:
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmClear:
			m.clearAll()
			m.successMessage = "Cleared (r to bring strokes back)"
		case ConfirmOverwriteExport:
			m.finishExport()
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *model) finishExport() {
	if err := m.exportPNG(m.exportPath); err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		log.Printf("[export] %v", err)
		return
	}
	m.successMessage = "Exported " + m.exportPath
	log.Printf("[export] wrote %s", m.exportPath)
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 1
	}
	renderHeight := m.height - 1 // Leave room for status line
	if renderHeight < 1 {
		renderHeight = 1
	}

	lines := NewCanvas(m.palette).Render(m.history, renderWidth, renderHeight, m.cursorX, m.cursorY, true, m.penDown)
	return strings.Join(lines, "\n") + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	swatch := lipgloss.NewStyle().
		Background(m.palette.Terminal(m.history.ColorIndex())).
		Render("  ")

	var status string
	switch {
	case m.mode == ModeConfirm && m.confirmAction == ConfirmClear:
		status = "Clear all strokes? (y/n)"
	case m.mode == ModeConfirm && m.confirmAction == ConfirmOverwriteExport:
		status = fmt.Sprintf("%s exists, overwrite? (y/n)", m.exportPath)
	case m.errorMessage != "":
		status = "Error: " + m.errorMessage
	case m.successMessage != "":
		status = m.successMessage
	default:
		pen := "up"
		if m.penDown || m.history.Capturing() {
			pen = "down"
		}
		status = fmt.Sprintf("%s | strokes %d | redo %d | pen %s | ? for help",
			m.palette.Name(m.history.ColorIndex()), m.history.Cursor(), len(m.history.redo), pen)
	}
	return swatch + " " + fitWidth(status, m.width-3)
}

func (m model) helpView() string {
	helpLines := []string{
		"scrawl help",
		"===========",
		"",
		"Drawing:",
		"  mouse drag       Draw a stroke",
		"  h/←/j/↓/k/↑/l/→  Move the pen cursor (Shift for 2x)",
		"  space/enter      Lower or lift the pen",
		"  c                Next color",
		"",
		"History:",
		"  u/Ctrl+Z         Undo last stroke",
		"  r/U/Ctrl+Y       Redo last undone stroke",
		"  x                Clear (every stroke can be redone)",
		"",
		"Files:",
		"  s                Save drawing state",
		"  e                Export as PNG",
		"  y                Copy state to clipboard",
		"  p                Restore state from clipboard",
		"",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Save and quit",
	}

	visibleHeight := m.height - 1
	if visibleHeight < 1 || visibleHeight > len(helpLines) {
		visibleHeight = len(helpLines)
	}
	return strings.Join(helpLines[:visibleHeight], "\n") + "\n" + "Esc to close"
}
