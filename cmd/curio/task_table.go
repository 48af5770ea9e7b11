package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/curiolib/curio/internal/ui"
	"github.com/curiolib/curio/library"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []library.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, taskPrefixLengths(tasks), ui.HighlightID, now))
}

func formatTaskTable(tasks []library.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "EFF", "STATUS", "DEADLINE", "ITEM", "DESCRIPTION"}, len(tasks))

	for _, task := range tasks {
		builder.AddRow([]string{
			highlight(task.ID, ui.PrefixLength(prefixLengths, task.ID)),
			styledPriority(task.Priority),
			strconv.Itoa(task.EffectivePriority(now)),
			styledStatus(task.Status),
			formatDeadline(task, now),
			orDash(ui.TruncateTableCell(task.ItemTitle)),
			ui.TruncateTableCell(task.Description),
		})
	}

	return builder.String()
}

func printTaskDetail(task library.Task, highlight func(string) string, now time.Time) {
	fmt.Printf("%s %s\n", detailHeaderStyle.Render(task.Description), highlight(task.ID))
	fmt.Printf("  Priority:  %s (effective %d)\n", styledPriority(task.Priority), task.EffectivePriority(now))
	fmt.Printf("  Status:    %s\n", styledStatus(task.Status))
	fmt.Printf("  Deadline:  %s\n", formatDeadline(task, now))
	if task.ItemTitle != "" {
		fmt.Printf("  Item:      %s (%s)\n", task.ItemTitle, task.ItemID)
	}
	if task.EstimatedMinutes > 0 {
		fmt.Printf("  Estimate:  %s\n", ui.FormatDurationShort(time.Duration(task.EstimatedMinutes)*time.Minute))
	}
	if notes := reflowParagraphs(task.Notes, lineWidth-detailIndent); notes != "" {
		fmt.Println("  Notes:")
		fmt.Println(indentBlock(notes, detailIndent))
	}
	fmt.Printf("  Created:   %s (%s)\n", task.CreatedAt.Format(time.RFC3339), ui.FormatTimeAgo(task.CreatedAt, now))
}

func formatDeadline(task library.Task, now time.Time) string {
	if task.Deadline == nil {
		return "-"
	}
	formatted := task.Deadline.Format("2006-01-02 15:04")
	if task.IsOverdue(now) {
		return overdueStyle.Render(formatted + " (overdue)")
	}
	if task.IsDueSoon(now) {
		return formatted + " (due soon)"
	}
	return formatted
}

func taskPrefixLengths(tasks []library.Task) map[string]int {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ui.UniqueIDPrefixLengths(ids)
}
