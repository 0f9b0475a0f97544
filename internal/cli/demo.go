package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/render/sink"
	"github.com/matzehuels/tilegrid/pkg/tile"
)

var (
	demoHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	demoStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	demoErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// demoChrome is the number of terminal lines around the canvas: title,
// help, the canvas border (two lines) and the status line.
const demoChrome = 5

// demoCommand creates the demo command, an interactive grid that relayouts
// when tiles are added or removed and when the terminal is resized.
func (c *CLI) demoCommand() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive tile grid in the terminal",
		Long: `Open an interactive grid that fills the terminal.

Keys:
  + / a    add a tile
  - / r    remove a tile
  m        cycle mode: best, columns, rows
  [ / ]    fewer / more fixed columns or rows
  o        toggle row-major / column-major order
  c        toggle centering
  q        quit

Resizing the terminal resizes the container and relayouts the grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.resolve(cmd, cfg)
			if !cmd.Flags().Changed("count") && cfg.Count <= 1 {
				opts.Count = 6
			}

			w, h := terminalSize()
			model := NewDemoModel(opts, w, h)
			if model.err != nil {
				return model.err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.bindLayout(cmd.Flags())
	registerValueCompletions(cmd)

	return cmd
}

// =============================================================================
// DemoModel - Interactive layout
// =============================================================================

// DemoModel is the bubbletea model for the demo command. The container is
// the terminal canvas measured in half cells, so tiles keep their aspect
// ratio on screen.
type DemoModel struct {
	Options pipeline.Options
	Layout  grid.Layout

	width  int
	height int
	err    error
}

// NewDemoModel creates a demo for a terminal of the given size and solves
// the initial layout.
func NewDemoModel(opts pipeline.Options, width, height int) DemoModel {
	m := DemoModel{Options: opts, width: width, height: height}
	m.relayout()
	return m
}

// canvas returns the drawing area inside the frame, in cells.
func (m DemoModel) canvas() (cols, rows int) {
	return max(1, m.width-2), max(1, m.height-demoChrome)
}

// relayout re-solves for the current terminal size and options. A failed
// solve keeps the previous layout and records the error.
func (m *DemoModel) relayout() {
	cols, rows := m.canvas()
	opts := m.Options
	opts.Width = float64(cols)
	opts.Height = float64(rows * 2)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		m.err = err
		return
	}

	l, err := pipeline.GenerateLayout(opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.Options = opts
	m.Layout = l
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "a":
			if m.Options.Count < errors.MaxCount {
				m.Options.Count++
			}
		case "-", "r":
			if m.Options.Count > 0 {
				m.Options.Count--
			}
		case "m":
			m.cycleMode()
		case "]":
			if m.fixedMode() {
				m.Options.Fixed++
			}
		case "[":
			if m.fixedMode() && m.Options.Fixed > 1 {
				m.Options.Fixed--
			}
		case "o":
			m.toggleOrder()
		case "c":
			m.Options.Centered = !m.Options.Centered
		default:
			return m, nil
		}
		m.relayout()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
	}
	return m, nil
}

func (m DemoModel) mode() tile.Mode {
	mode, _ := tile.ParseMode(m.Options.Mode)
	return mode
}

func (m DemoModel) fixedMode() bool {
	return m.mode().Fixed()
}

// cycleMode steps best → columns → rows → best. Entering a fixed mode keeps
// the current grid's count on that axis, and the order follows the mode.
func (m *DemoModel) cycleMode() {
	var next tile.Mode
	switch m.mode() {
	case tile.ModeBest:
		next = tile.ModeFixedColumns
		m.Options.Fixed = max(1, m.Layout.Columns)
	case tile.ModeFixedColumns:
		next = tile.ModeFixedRows
		m.Options.Fixed = max(1, m.Layout.Rows)
	default:
		next = tile.ModeBest
		m.Options.Fixed = 0
	}
	m.Options.Mode = next.String()
	m.Options.Order = next.DefaultOrder().String()
}

func (m *DemoModel) toggleOrder() {
	order, _ := tile.ParseOrder(m.Options.Order)
	if order == tile.OrderRowMajor {
		m.Options.Order = tile.OrderColumnMajor.String()
	} else {
		m.Options.Order = tile.OrderRowMajor.String()
	}
}

func (m DemoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("tilegrid demo"))
	b.WriteString("\n")
	b.WriteString(demoHelpStyle.Render("+/- tiles  m mode  [/] fixed  o order  c center  q quit"))
	b.WriteString("\n")

	cols, rows := m.canvas()
	b.WriteString(sink.RenderText(m.Layout, cols, rows))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(demoErrorStyle.Render(errors.UserMessage(m.err)))
	} else {
		b.WriteString(demoStatusStyle.Render(m.status()))
	}
	return b.String()
}

// status describes the layout in one line.
func (m DemoModel) status() string {
	l := m.Layout
	parts := []string{
		fmt.Sprintf("%d tiles", len(l.Tiles)),
		fmt.Sprintf("%d×%d", l.Columns, l.Rows),
		fmt.Sprintf("tile %s×%s", formatFloat(l.TileWidth), formatFloat(l.TileHeight)),
		"pass " + l.Pass,
		"mode " + m.Options.Mode,
		"order " + m.Options.Order,
	}
	if m.fixedMode() {
		parts = append(parts, fmt.Sprintf("fixed %d", m.Options.Fixed))
	}
	return strings.Join(parts, " · ")
}
