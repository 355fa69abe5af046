package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"termchess/chess"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// Model drives the console interface. The engine does all the rule work;
// the model only collects candidate moves, submits them, and displays the
// resulting state.
type Model struct {
	game   *chess.Game // nil until "play"
	gameID string
	status chess.Status

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "command or move..."
	ti.Prompt = "> "
	ti.CharLimit = 60
	ti.Width = 40

	return Model{
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"Play chess on the command line!",
			"press i to type, then: play / help / exit",
		},
	}
}

func (m Model) playing() bool { return m.game != nil }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line != "" {
					return m, m.execCommand(line)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) tea.Cmd {
	m.appendLog("> " + line)

	switch line {
	case "help":
		m.logHelp()
		return nil
	case "exit", "quit":
		m.appendLog("Goodbye!")
		return tea.Quit
	case "play", "new":
		m.startGame()
		return nil
	}

	if !m.playing() {
		m.appendLog(fmt.Sprintf("unknown command: %s", line))
		return nil
	}

	switch line {
	case "moves":
		m.logMoves()
	case "fen":
		m.appendLog(m.game.FEN())
	default:
		m.execMove(line)
	}
	return nil
}

func (m *Model) startGame() {
	m.game = chess.NewGame()
	m.status = m.game.Status()
	m.gameID = uuid.NewString()[:8]
	m.appendLog(fmt.Sprintf("game %s started, white to move", m.gameID))
	m.appendLog("enter moves as e2e4 (e7e8q to promote)")
}

func (m *Model) execMove(line string) {
	if m.status.Terminal() {
		m.appendLog("game over: " + m.status.String() + " (play to restart)")
		return
	}

	move, err := m.game.ParseMove(line)
	if err != nil {
		m.appendLog(err.Error())
		return
	}

	status, err := m.game.ApplyMove(move)
	if err != nil {
		m.appendLog(err.Error())
		return
	}
	m.status = status

	switch {
	case status == chess.StatusCheckmate:
		m.appendLog(fmt.Sprintf("checkmate! %s wins", m.game.SideToMove().Other()))
	case status.Terminal():
		m.appendLog(status.String())
	case status == chess.StatusCheck:
		m.appendLog(fmt.Sprintf("%s is in check", m.game.SideToMove()))
	}
}

func (m *Model) logMoves() {
	moves := m.game.LegalMoves()
	strs := make([]string, len(moves))
	for i, mv := range moves {
		strs[i] = mv.String()
	}
	m.appendLog(fmt.Sprintf("%d legal moves:", len(moves)))
	for i := 0; i < len(strs); i += 8 {
		end := i + 8
		if end > len(strs) {
			end = len(strs)
		}
		m.appendLog("  " + strings.Join(strs[i:end], " "))
	}
}

func (m *Model) logHelp() {
	m.appendLog("    Commands:")
	m.appendLog("\thelp - show this message")
	m.appendLog("\tplay - start a new game")
	m.appendLog("\texit - exit the program")
	if m.playing() {
		m.appendLog("\tmoves - list legal moves")
		m.appendLog("\tfen - print the position")
		m.appendLog("\te2e4 - play a move")
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}

	title := "termchess"
	if m.playing() {
		title = fmt.Sprintf("termchess  game:%s  %s to move  [%s]", m.gameID, m.game.SideToMove(), m.status)
	}
	header := titleStyle.Render(fmt.Sprintf("%s  mode:%s", title, modeStr))

	var board string
	if m.playing() {
		board = boxStyle.Render(RenderBoard(m.game.Squares()))
	}

	logHeight := min(max(m.height-16, 5), 20)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(24, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a command, q to quit"
	}
	inputBox := boxStyle.Width(max(24, m.width-2)).Render(inputLine)

	if board == "" {
		return header + "\n" + logBox + "\n" + inputBox + "\n"
	}
	return header + "\n" + board + "\n" + logBox + "\n" + inputBox + "\n"
}
