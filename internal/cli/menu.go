package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/render"
	"github.com/routegrid/routegrid/shortestpath"
	"github.com/routegrid/routegrid/spanning"
	"github.com/routegrid/routegrid/traversal"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Menu actions, in display order.
const (
	actionCities = iota
	actionBFS
	actionDFS
	actionDijkstra
	actionBellmanFord
	actionTour
	actionDraw
	actionQuit
)

var menuChoices = []string{
	"List cities",
	"BFS traversal from a city",
	"DFS traversal from a city",
	"Cheapest route (Dijkstra)",
	"Cheapest route (Bellman-Ford)",
	"Tour skeleton (Kruskal MST)",
	"Draw the full graph",
	"Quit",
}

// menuModel is the bubbletea model for the main menu.
type menuModel struct {
	Cursor int
	Chosen int // -1 until a choice is made
}

func newMenuModel() menuModel {
	return menuModel{Chosen: -1}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Chosen = actionQuit
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(menuChoices)-1 {
				m.Cursor++
			}
		case "enter":
			m.Chosen = m.Cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Travel Route Finder"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, choice := range menuChoices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, choice)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// newMenuCmd runs the interactive menu: every selected action prompts for
// its inputs, prints the result, and returns to the menu.
func (c *CLI) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over the loaded graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			in := bufio.NewReader(os.Stdin)
			for {
				p := tea.NewProgram(newMenuModel())
				finalModel, err := p.Run()
				if err != nil {
					return err
				}
				m, ok := finalModel.(menuModel)
				if !ok || m.Chosen == -1 || m.Chosen == actionQuit {
					return nil
				}

				if err := c.runMenuAction(cmd, g, in, m.Chosen); err != nil {
					printError("%v", err)
				}
				fmt.Println()
			}
		},
	}
}

// runMenuAction executes one menu selection against the loaded graph.
func (c *CLI) runMenuAction(cmd *cobra.Command, g *core.Graph, in *bufio.Reader, action int) error {
	switch action {
	case actionCities:
		nodes := g.Nodes()
		fmt.Println(styleTitle.Render(fmt.Sprintf("%d cities", len(nodes))))
		for _, n := range nodes {
			fmt.Println("  " + styleValue.Render(n))
		}

	case actionBFS, actionDFS:
		start, err := promptCity(in, g, "Start city: ")
		if err != nil {
			return err
		}
		run, name := traversal.BFS, "BFS"
		if action == actionDFS {
			run, name = traversal.DFS, "DFS"
		}
		res, err := run(g, start)
		if err != nil {
			return err
		}
		printOrder(name, res.Order)

	case actionDijkstra, actionBellmanFord:
		source, err := promptCity(in, g, "From: ")
		if err != nil {
			return err
		}
		target, err := promptCity(in, g, "To: ")
		if err != nil {
			return err
		}
		find, name := shortestpath.Dijkstra, "dijkstra"
		if action == actionBellmanFord {
			find, name = shortestpath.BellmanFord, "bellman-ford"
		}
		path, err := find(g, source, target)
		if err != nil {
			return err
		}
		if !path.Reachable() {
			printError("no path from %s to %s", source, target)
			return nil
		}
		printSuccess("%s: %d km", name, path.Distance)
		printKeyValue("path", strings.Join(path.Nodes, " → "))

	case actionTour:
		f, err := spanning.Kruskal(g)
		if err != nil {
			return err
		}
		printSuccess("spanning forest: %d edges, %d km total, %d tree(s)",
			len(f.Edges), f.TotalWeight, f.Trees)
		for _, e := range f.Edges {
			fmt.Printf("  %s %s %s %s\n",
				styleValue.Render(e.From), styleDim.Render(iconArrow),
				styleValue.Render(e.To), styleDim.Render(fmt.Sprintf("(%d km)", e.Weight)))
		}

	case actionDraw:
		dot := render.ToDOT(g, render.Options{Title: "Full City Graph", ShowWeights: true})
		return c.writeImage(cmd, "graph.svg", dot)
	}

	return nil
}

// promptCity reads one city name from in and verifies it exists in g.
func promptCity(in *bufio.Reader, g *core.Graph, prompt string) (string, error) {
	fmt.Print(styleDim.Render(prompt))
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	city := strings.TrimSpace(line)
	if !g.Contains(city) {
		return "", fmt.Errorf("unknown city: %q", city)
	}

	return city, nil
}
