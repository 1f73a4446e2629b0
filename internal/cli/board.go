package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/pkg/models"
)

// Board styles.
var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	boardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	cellStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCellStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	cellOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	cellWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	cellOverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type boardModel struct {
	start models.Date
	grid  *core.WeekGrid
	queue []models.Task

	// Cursor position: day column and slot row.
	day  int
	slot int

	width   int
	height  int
	loading bool
	err     error
}

// boardLoadedMsg carries a rebuilt grid back to the model.
type boardLoadedMsg struct {
	grid  *core.WeekGrid
	queue []models.Task
	err   error
}

func newBoardModel(start models.Date) boardModel {
	return boardModel{
		start:   start,
		loading: true,
	}
}

func (m boardModel) Init() tea.Cmd {
	return loadBoard(m.start)
}

func loadBoard(start models.Date) tea.Cmd {
	return func() tea.Msg {
		if Tasks == nil || Catalog == nil {
			return boardLoadedMsg{err: fmt.Errorf("planner not initialized")}
		}
		if err := Tasks.Load(); err != nil {
			return boardLoadedMsg{err: fmt.Errorf("loading tasks: %w", err)}
		}
		all, err := Tasks.GetAllTasks()
		if err != nil {
			return boardLoadedMsg{err: fmt.Errorf("reading tasks: %w", err)}
		}
		return boardLoadedMsg{
			grid:  core.BuildWeek(all, start, 7, Catalog, CapThresholds),
			queue: core.UnscheduledTasks(all, core.QueueFilter{}, Today()),
		}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	slots := 0
	if Catalog != nil {
		slots = len(Catalog.Slots())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadBoard(m.start)
		case "left", "h":
			if m.day > 0 {
				m.day--
			}
			return m, nil
		case "right", "l":
			if m.day < 6 {
				m.day++
			}
			return m, nil
		case "up", "k":
			if m.slot > 0 {
				m.slot--
			}
			return m, nil
		case "down", "j":
			if slots > 0 && m.slot < slots-1 {
				m.slot++
			}
			return m, nil
		case "[":
			m.start = m.start.AddDays(-7)
			m.loading = true
			return m, loadBoard(m.start)
		case "]":
			m.start = m.start.AddDays(7)
			m.loading = true
			return m, loadBoard(m.start)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.grid = msg.grid
		m.queue = msg.queue
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m boardModel) View() string {
	title := boardTitleStyle.Render(fmt.Sprintf(" Aura Board · week of %s ", m.start))
	help := boardHelpStyle.Render("arrows: move | [ ]: week | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading board...\n\n%s", title, help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}
	if m.grid == nil || Catalog == nil {
		return fmt.Sprintf("%s\n\n  No data.\n\n%s", title, help)
	}

	grid := m.renderGrid()
	detail := m.renderDetail()
	queue := m.renderQueue()

	body := lipgloss.JoinVertical(lipgloss.Left, grid,
		lipgloss.JoinHorizontal(lipgloss.Top, detail, queue))
	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m boardModel) renderGrid() string {
	dates := m.grid.Dates()
	slots := Catalog.Slots()

	var rows []string

	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-14s", ""))
	for _, d := range dates {
		header.WriteString(fmt.Sprintf("  %-8s", shortDate(d)))
	}
	rows = append(rows, boardHeaderStyle.Render(header.String()))

	for si, slot := range slots {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%-14s", slot.Label))
		for di, d := range dates {
			cell := m.grid.Cell(d, slot.Key)
			text := "   -    "
			if cell.Usage.TaskCount > 0 {
				text = fmt.Sprintf("%d·%.1fh", cell.Usage.TaskCount, cell.Usage.UsedHours)
			}
			styled := styleForCellLevel(cell.Status.Level).Render(fmt.Sprintf("%-8s", text))
			if di == m.day && si == m.slot {
				styled = lipgloss.NewStyle().Reverse(true).Render(fmt.Sprintf("%-8s", text))
			}
			row.WriteString("  " + styled)
		}
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

func (m boardModel) renderDetail() string {
	dates := m.grid.Dates()
	slots := Catalog.Slots()
	if m.day >= len(dates) || m.slot >= len(slots) {
		return ""
	}
	date := dates[m.day]
	slot := slots[m.slot]
	cell := m.grid.Cell(date, slot.Key)

	var b strings.Builder
	b.WriteString(boardHeaderStyle.Render(fmt.Sprintf("%s · %s", date, slot.Label)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %.1f/%.1fh (%s)\n", cell.Usage.UsedHours,
		Catalog.CapacityHours(slot.Key), cell.Status.Level))

	if len(cell.Tasks) == 0 {
		b.WriteString("  Empty slot.\n")
	}
	for _, t := range cell.Tasks {
		line := fmt.Sprintf("  %-10s %s", t.ID, t.Title)
		if t.EstEffort > 0 {
			line += fmt.Sprintf(" (%.1fh)", t.EstEffort)
		}
		if t.Status == models.StatusDone {
			line += " ✓"
		}
		b.WriteString(line + "\n")
	}

	return cellStyle.Render(b.String())
}

func (m boardModel) renderQueue() string {
	var b strings.Builder
	b.WriteString(boardHeaderStyle.Render("Queue"))
	b.WriteString("\n")

	if len(m.queue) == 0 {
		b.WriteString("  Empty.\n")
	}
	shown := m.queue
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, t := range shown {
		line := fmt.Sprintf("  %-10s %-4s %s", t.ID, t.Priority, t.Title)
		if badge := core.Urgency(t.DueDate, Today()); badge != nil {
			line += "  " + badge.Label()
		}
		b.WriteString(line + "\n")
	}
	if len(m.queue) > len(shown) {
		b.WriteString(fmt.Sprintf("  … %d more\n", len(m.queue)-len(shown)))
	}

	return cellStyle.Render(b.String())
}

func styleForCellLevel(level core.CapacityLevel) lipgloss.Style {
	switch level {
	case core.LevelOver:
		return cellOverStyle
	case core.LevelWarning:
		return cellWarningStyle
	default:
		return cellOKStyle
	}
}

var boardStart string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive TUI weekly board",
	Long: `Launch an interactive terminal board showing the week grid with
per-cell capacity, the selected cell's tasks, and the unscheduled queue.

Navigate with the arrow keys, step weeks with [ and ], refresh with r,
quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil || Catalog == nil {
			return fmt.Errorf("planner not initialized")
		}

		start, err := resolveDate(boardStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}

		p := tea.NewProgram(newBoardModel(start), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardStart, "start", "", "First day of the board (default today)")
	rootCmd.AddCommand(boardCmd)
}
