package cli

import (
	"fmt"
	"strconv"

	"studio-planner/internal/planner/mapper"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	purchasedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	essentialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List equipment by category with the budget summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			items := p.Store.All()
			out := cmd.OutOrStdout()
			for _, group := range service.GroupByCategory(items) {
				fmt.Fprintln(out, headerStyle.Render(group.Category))
				fmt.Fprintln(out, equipmentTable(group.Items).Render())
			}

			budget := service.Summarize(items)
			fmt.Fprintf(out, "%d/%d purchased · $%.0f remaining · %d essential pending · saved %s\n",
				budget.Purchased, budget.Total, budget.Remaining, budget.EssentialPending,
				service.LastSaved(cmd.Context(), p.KV, timeNow()))
			return nil
		},
	}
}

func equipmentTable(items []models.Equipment) *table.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		check := " "
		if item.Purchased {
			check = "✓"
		}
		rows = append(rows, []string{
			check,
			item.Name,
			mapper.Dimensions(item),
			strconv.Itoa(int(item.Rotation)) + "°",
			fmt.Sprintf("%.1f, %.1f", item.X, item.Y),
			string(item.Priority),
			item.EstimatedCost,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("", "Name", "Size", "Rot", "Position", "Priority", "Cost").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			item := items[row]
			switch {
			case item.Purchased:
				return purchasedStyle
			case item.Priority == models.PriorityEssential:
				return essentialStyle
			}
			return lipgloss.NewStyle()
		})
}
