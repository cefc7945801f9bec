package formatter

import (
	"fmt"
	"strings"

	"github.com/sitedesk/sitedesk/internal/service"
)

// FormatSummary renders the dashboard summary for plain CLI output.
func FormatSummary(sum service.StatusSummary) string {
	var b strings.Builder

	b.WriteString(Header("Site Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d total · %s · %s · %s\n",
		Bold("Crew:"),
		sum.Workers.Total,
		StyleGreen.Render(fmt.Sprintf("%d available", sum.Workers.Available)),
		StyleYellow.Render(fmt.Sprintf("%d assigned", sum.Workers.Assigned)),
		StyleRed.Render(fmt.Sprintf("%d on leave", sum.Workers.OnLeave)),
	)
	fmt.Fprintf(&b, "%s %s\n", Bold("Overall progress:"), RenderProgress(sum.AverageProgress, 20))
	if sum.Unread > 0 {
		fmt.Fprintf(&b, "%s %s\n", Bold("Notifications:"), StyleRed.Render(fmt.Sprintf("%d unread", sum.Unread)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Projects"))
	b.WriteString("\n")
	if len(sum.Projects) == 0 {
		b.WriteString(Dim("No projects yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(sum.Projects))
		for _, v := range sum.Projects {
			rows = append(rows, []string{
				fmt.Sprintf("%d", v.Project.ID),
				v.Project.Name,
				PhaseBadge(v.Phase),
				RenderProgress(v.Project.Progress, 12),
				v.Project.Deadline.String(),
				fmt.Sprintf("%d/%d", v.Assigned, v.Project.Workers),
				fmt.Sprintf("%d bags · %d bricks · %d rods", v.Estimate.CementBags, v.Estimate.Bricks, v.Estimate.SteelRods),
			})
		}
		b.WriteString(RenderTable(
			[]string{"ID", "NAME", "PHASE", "PROGRESS", "DEADLINE", "CREW", "MATERIALS EST."},
			rows,
		))
	}
	b.WriteString("\n")

	b.WriteString(Header("Materials"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(sum.Materials))
	for i, m := range sum.Materials {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			m.Name,
			fmt.Sprintf("%d", m.Quantity),
			StockBadge(m.Status),
		})
	}
	b.WriteString(RenderTable([]string{"#", "NAME", "QTY", "STATUS"}, rows))

	return b.String()
}
