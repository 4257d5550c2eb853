package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/schedule"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// planLoadedMsg signals that the day's plan has been (re)loaded.
type planLoadedMsg struct {
	plan *domain.DailyPlan
	err  error
}

// actionDoneMsg signals a mutation finished; the plan is reloaded next.
type actionDoneMsg struct {
	status string
	err    error
}

type timelineKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Later   key.Binding
	Earlier key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func (k timelineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Earlier, k.Later, k.Clear, k.Quit}
}

func (k timelineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var timelineKeys = timelineKeyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
	Earlier: key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move earlier")),
	Later:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move later")),
	Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "unschedule")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// timelineModel is the interactive day view: a half-hour grid with the
// day's items, navigable and editable in place.
type timelineModel struct {
	app  *App
	date string
	grid schedule.Grid

	plan   *domain.DailyPlan
	order  []*domain.Item // display order: scheduled by start, then unscheduled by position
	cursor int
	status string
	err    error

	keys timelineKeyMap
	help help.Model
}

func newTimelineModel(app *App, date string) timelineModel {
	return timelineModel{
		app:  app,
		date: date,
		grid: schedule.NewGrid(30),
		keys: timelineKeys,
		help: help.New(),
	}
}

func (m timelineModel) Init() tea.Cmd {
	return m.loadPlan()
}

func (m timelineModel) loadPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.app.Composer.GetOrCreate(context.Background(), m.date)
		return planLoadedMsg{plan: plan, err: err}
	}
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.plan = msg.plan
		m.order = displayOrder(msg.plan)
		if m.cursor >= len(m.order) {
			m.cursor = len(m.order) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.status = msg.status
		return m, m.loadPlan()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.order)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Toggle):
			if it := m.selected(); it != nil {
				return m, m.toggleDone(it.ID)
			}
		case key.Matches(msg, m.keys.Later):
			if it := m.selected(); it != nil && it.Scheduled != nil {
				return m, m.nudge(it, m.grid.StepMinutes)
			}
		case key.Matches(msg, m.keys.Earlier):
			if it := m.selected(); it != nil && it.Scheduled != nil {
				return m, m.nudge(it, -m.grid.StepMinutes)
			}
		case key.Matches(msg, m.keys.Clear):
			if it := m.selected(); it != nil && it.Scheduled != nil {
				return m, m.clearSlot(it.ID)
			}
		}
	}
	return m, nil
}

func (m timelineModel) selected() *domain.Item {
	if m.cursor < 0 || m.cursor >= len(m.order) {
		return nil
	}
	return m.order[m.cursor]
}

func (m timelineModel) toggleDone(itemID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.app.Composer.ToggleCompleted(context.Background(), m.date, itemID)
		return actionDoneMsg{err: err}
	}
}

// nudge moves a scheduled item one grid step. Snapping keeps repeated
// nudges on slot boundaries even if the stored span drifted.
func (m timelineModel) nudge(it *domain.Item, deltaMin int) tea.Cmd {
	target := m.grid.Snap(it.Scheduled.Start.Add(time.Duration(deltaMin) * time.Minute))
	return func() tea.Msg {
		result, err := m.app.Scheduler.Reschedule(context.Background(), m.date, it.ID, target, false)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if !result.Applied {
			return actionDoneMsg{status: formatter.StyleYellow.Render(
				fmt.Sprintf("Blocked by %d overlap(s)", len(result.Conflicts)))}
		}
		return actionDoneMsg{}
	}
}

func (m timelineModel) clearSlot(itemID string) tea.Cmd {
	return func() tea.Msg {
		err := m.app.Scheduler.ClearSchedule(context.Background(), m.date, itemID)
		return actionDoneMsg{err: err, status: "Unscheduled"}
	}
}

// displayOrder sorts scheduled items by start time and appends unscheduled
// items in plan position order.
func displayOrder(plan *domain.DailyPlan) []*domain.Item {
	var scheduled, unscheduled []*domain.Item
	for _, it := range plan.Items {
		if it.Scheduled != nil {
			scheduled = append(scheduled, it)
		} else {
			unscheduled = append(unscheduled, it)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].Scheduled.Start.Before(scheduled[j].Scheduled.Start)
	})
	return append(scheduled, unscheduled...)
}

func (m timelineModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.plan == nil {
		return formatter.Dim("Loading...") + "\n"
	}

	var b strings.Builder
	day, _ := domain.ParseDate(m.date)
	b.WriteString(formatter.Header(fmt.Sprintf("%s (%s)", formatter.HumanDate(day), m.date)))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(day))

	if unscheduled := m.renderUnscheduled(); unscheduled != "" {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Unscheduled"))
		b.WriteString("\n")
		b.WriteString(unscheduled)
	}

	b.WriteString("\n")
	b.WriteString(formatter.RenderProgress(m.plan.Progress, 20))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %d/%d goals", m.plan.GoalsCompleted, m.plan.GoalsTotal)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m timelineModel) renderGrid(day time.Time) string {
	var b strings.Builder
	for _, slot := range m.grid.Slots() {
		slotStart := m.grid.At(day, slot)
		label := formatter.Dim(fmt.Sprintf("%02d:%02d", slot.Hour, slot.Minute))

		var cells []string
		for _, it := range m.order {
			if it.Scheduled == nil {
				continue
			}
			if !slotStart.Before(it.Scheduled.Start) && slotStart.Before(it.Scheduled.End) {
				cells = append(cells, m.renderCell(it, slotStart.Equal(it.Scheduled.Start)))
			}
		}

		if len(cells) == 0 {
			b.WriteString(fmt.Sprintf("  %s %s\n", label, formatter.Dim("·")))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", label, strings.Join(cells, "  ")))
	}
	return b.String()
}

// renderCell renders an item's block for one grid row; the title only shows
// on the row where the span starts.
func (m timelineModel) renderCell(it *domain.Item, first bool) string {
	style := lipgloss.NewStyle().Foreground(formatter.ColorBlue)
	if it.Completed {
		style = formatter.StyleDim
	}
	if sel := m.selected(); sel != nil && sel.ID == it.ID {
		style = style.Bold(true).Foreground(formatter.ColorHeader)
	}

	if !first {
		return style.Render("│")
	}
	marker := "┌"
	if it.Scheduled.Minutes() <= m.grid.StepMinutes {
		marker = "■"
	}
	title := it.Title
	if it.Completed {
		title += " ✔"
	}
	return style.Render(marker + " " + title)
}

func (m timelineModel) renderUnscheduled() string {
	var b strings.Builder
	for _, it := range m.order {
		if it.Scheduled != nil {
			continue
		}
		check := "[ ]"
		if it.Completed {
			check = "[✔]"
		}
		line := fmt.Sprintf("  %s %s %s", check, formatter.KindBadge(it.Kind), it.Title)
		if sel := m.selected(); sel != nil && sel.ID == it.ID {
			line = formatter.StyleHeader.Render(line)
		} else if it.Completed {
			line = formatter.StyleDim.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
