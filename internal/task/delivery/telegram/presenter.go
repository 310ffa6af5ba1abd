package telegram

import (
	"fmt"
	"strings"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/pkg/quickadd"
)

const dueLayout = "Mon 02 Jan 15:04"

const startMessage = `Welcome! Send me a task in one line and I will file it.

Example: Pay rent tomorrow 9am #home !high

Type /help for the full syntax.`

const helpMessage = `Quick-add syntax:
  !high !med !low         priority
  #word                   tag
  today, tonight, tomorrow
  next monday ... next sunday
  in 30 min, in 2 hours, in 3 days
  3pm, 9:30am, 15:00      time of day

Commands:
  /chips  one-tap due times
  /today  tasks due today`

func formatCreated(t model.Task) string {
	var sb strings.Builder
	sb.WriteString("Added: " + t.Title)
	if t.DueAt != nil {
		sb.WriteString("\nDue: " + formatDue(*t.DueAt))
	}
	if p := quickadd.Priority(t.Priority); p != quickadd.PriorityNone {
		sb.WriteString("\nPriority: " + p.String())
	}
	if len(t.Tags) > 0 {
		sb.WriteString("\nTags: #" + strings.Join(t.Tags, " #"))
	}
	return sb.String()
}

func formatChips(out task.ChipsOutput) string {
	return fmt.Sprintf("Chips (%s):\n  today      %s\n  tonight    %s\n  tomorrow   %s\n  next week  %s",
		out.Timezone,
		out.Dates.Today.Format(dueLayout),
		out.Dates.Tonight.Format(dueLayout),
		out.Dates.Tomorrow.Format(dueLayout),
		out.Dates.NextWeek.Format(dueLayout),
	)
}

func formatTaskList(heading string, tasks []model.Task) string {
	if len(tasks) == 0 {
		return heading + ": nothing due."
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d):", heading, len(tasks)))
	for i, t := range tasks {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, t.Title))
		if t.DueAt != nil {
			sb.WriteString(" at " + t.DueAt.Format("15:04"))
		}
	}
	return sb.String()
}

func formatDue(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(dueLayout), t.Location())
}
