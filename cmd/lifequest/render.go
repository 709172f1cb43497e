package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/model"
)

const colWidth = 30

var (
	subtleColor  = lipgloss.Color("#6c7086")
	infoColor    = lipgloss.Color("#89b4fa")
	warnColor    = lipgloss.Color("#f9e2af")
	dangerColor  = lipgloss.Color("#f38ba8")
	successColor = lipgloss.Color("#a6e3a1")
	borderColor  = lipgloss.Color("#45475a")

	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)
	columnStyle = lipgloss.NewStyle().
			Width(colWidth).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// renderFolderTree renders root folders and, for expanded ones, their
// children, mirroring the sidebar.
func renderFolderTree(folders []model.Folder) string {
	children := make(map[string][]model.Folder)
	var roots []model.Folder
	for _, f := range folders {
		if f.ParentID == nil {
			roots = append(roots, f)
		} else {
			children[*f.ParentID] = append(children[*f.ParentID], f)
		}
	}

	var b strings.Builder
	var walk func(f model.Folder, depth int)
	walk = func(f model.Folder, depth int) {
		marker := " "
		if len(children[f.ID]) > 0 {
			marker = "▸"
			if f.IsExpanded {
				marker = "▾"
			}
		}
		count := subtleStyle.Render(fmt.Sprintf("(%d)", f.ProjectCount))
		fmt.Fprintf(&b, "%s%s %s %s %s  %s\n",
			strings.Repeat("  ", depth), marker, f.Icon, f.Name, count, subtleStyle.Render(f.ID))
		if f.IsExpanded {
			for _, c := range children[f.ID] {
				walk(c, depth+1)
			}
		}
	}
	for _, f := range roots {
		walk(f, 0)
	}
	return b.String()
}

// renderBoard renders a project's lists as side-by-side kanban columns.
func renderBoard(p model.Project, b *board.Store) string {
	header := fmt.Sprintf("%s  %s  %.0f%% done, %d XP",
		titleStyle.Render(p.Name),
		subtleStyle.Render(string(p.Status)),
		b.ProjectProgress(p.ID), p.XPEarned)

	lists := b.TaskListsByProject(p.ID)
	if len(lists) == 0 {
		return header + "\n" + subtleStyle.Render("No task lists yet.") + "\n"
	}

	var cols []string
	for _, l := range lists {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(infoColor)
		if l.Color != "" {
			headerStyle = headerStyle.Foreground(lipgloss.Color(l.Color))
		}
		lines := []string{headerStyle.Render(fmt.Sprintf("%s (%d)", l.Name, l.TaskCount))}
		for _, t := range b.TasksByList(l.ID) {
			lines = append(lines, renderCard(t))
		}
		cols = append(cols, columnStyle.Render(strings.Join(lines, "\n")))
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
}

func renderCard(t model.Task) string {
	prefix := statusGlyph(t.Status)
	title := t.Title
	if runes := []rune(title); len(runes) > colWidth-6 {
		title = string(runes[:colWidth-7]) + "…"
	}
	card := fmt.Sprintf("%s %s%s", prefix, priorityGlyph(t.Priority), title)
	if t.IsOverdue() {
		card += lipgloss.NewStyle().Foreground(dangerColor).Render(" !due")
	}
	return card
}

func statusGlyph(s model.TaskStatus) string {
	switch s {
	case model.StatusDone:
		return lipgloss.NewStyle().Foreground(successColor).Render("✓")
	case model.StatusBlocked:
		return lipgloss.NewStyle().Foreground(dangerColor).Render("■")
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(warnColor).Render("◐")
	default:
		return "·"
	}
}

func priorityGlyph(p model.TaskPriority) string {
	switch p {
	case model.PriorityHighest:
		return lipgloss.NewStyle().Foreground(dangerColor).Render("‼") + " "
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(warnColor).Render("!") + " "
	default:
		return ""
	}
}

// renderTask renders a single task's detail view with its comments.
func renderTask(t model.Task, comments []model.TaskComment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", statusGlyph(t.Status), titleStyle.Render(t.Title))
	fmt.Fprintf(&b, "  id:        %s\n", t.ID)
	fmt.Fprintf(&b, "  status:    %s  priority: %s  type: %s\n", t.Status, t.Priority, t.Type)
	if t.Description != "" {
		fmt.Fprintf(&b, "  about:     %s\n", t.Description)
	}
	if len(t.Labels) > 0 {
		fmt.Fprintf(&b, "  labels:    %s\n", strings.Join(t.Labels, ", "))
	}
	if t.StoryPoints != nil {
		fmt.Fprintf(&b, "  points:    %d\n", *t.StoryPoints)
	}
	fmt.Fprintf(&b, "  xp:        %d\n", t.XPValue)
	fmt.Fprintf(&b, "  pomodoros: %d/%d\n", t.ActualPomodoros, t.EstimatedPomodoros)
	if t.OriginalEstimate > 0 || t.TimeSpent > 0 {
		fmt.Fprintf(&b, "  time:      %.1fh spent, %.1fh remaining of %.1fh\n",
			t.TimeSpent, t.RemainingEstimate, t.OriginalEstimate)
	}
	if t.DueDate != nil {
		due := formatWhen(*t.DueDate)
		if t.IsOverdue() {
			due = lipgloss.NewStyle().Foreground(dangerColor).Render(due + " (overdue)")
		}
		fmt.Fprintf(&b, "  due:       %s\n", due)
	}
	if t.BlockedFrom != nil {
		fmt.Fprintf(&b, "  blocked from: %s\n", *t.BlockedFrom)
	}
	if len(comments) > 0 {
		fmt.Fprintf(&b, "  comments:\n")
		for _, c := range comments {
			fmt.Fprintf(&b, "    [%s] %s: %s\n", formatWhen(c.CreatedAt), c.AuthorName, c.Content)
		}
	}
	return b.String()
}
