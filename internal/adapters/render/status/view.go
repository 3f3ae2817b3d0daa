package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/client"
	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/session"
	"github.com/charmbracelet/lipgloss"
)

const depthBarWidth = 16

type RenderOptions struct {
	Now time.Time
}

func renderView(st client.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Feedkeeper Status"),
		s.header.Render(profileLine(st)),
		s.section.Render(renderSession(st.Session, s)),
		s.section.Render(renderQueue(st.Queue, s)),
		s.section.Render(renderCache(st.Cache, s)),
		s.section.Render(renderIngest(st.Ingest, s)),
	}

	if !st.CheckedAt.IsZero() {
		lines = append(lines, s.section.Render(s.meta.Render("checked at "+formatTimestamp(st.CheckedAt, opts.Now))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileLine(st client.Status) string {
	if st.Profile.Handle == "" {
		return fmt.Sprintf("profile: %s", st.Profile.ID)
	}

	return fmt.Sprintf("profile: %s (@%s)", st.Profile.ID, st.Profile.Handle)
}

func renderSession(info client.SessionInfo, s styles) string {
	state := stateStyle(info.State, s).Render(info.State.String())
	parts := []string{
		s.heading.Render("Session"),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("state:"), " ", state),
	}

	if info.UserID != "" {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("account id:"), " ", s.detail.Render(string(info.UserID))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func stateStyle(state session.State, s styles) lipgloss.Style {
	switch state {
	case session.StateAuthenticated:
		return s.detail
	case session.StateFailed:
		return s.warning
	default:
		return s.empty
	}
}

func renderQueue(stats dispatch.Stats, s styles) string {
	depth := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("depth:"),
		" ",
		renderDepthBar(stats.Depth, depthBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d pending", stats.Depth)),
	)
	counters := s.meta.Render(fmt.Sprintf("executed %d, retried %d, failed %d", stats.Executed, stats.Retried, stats.Failed))

	return lipgloss.JoinVertical(lipgloss.Left,
		s.heading.Render("Dispatch"),
		depth,
		counters,
	)
}

// renderDepthBar fills one cell per pending op, saturating at width.
func renderDepthBar(depth, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := depth
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func renderCache(info client.CacheInfo, s styles) string {
	parts := []string{
		s.heading.Render("Cache"),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("items:"),
			" ",
			s.detail.Render(fmt.Sprintf("%d in memory, %d on disk", info.MemoryItems, info.DurableItems)),
		),
	}

	if info.Root != "" {
		parts = append(parts, s.meta.Render("root: "+info.Root))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderIngest(info client.IngestInfo, s styles) string {
	lastSeen := "never"
	style := s.empty
	if info.LatestSeen != "" {
		lastSeen = string(info.LatestSeen)
		style = s.detail
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.heading.Render("Ingest"),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("records:"), " ", s.detail.Render(fmt.Sprintf("%d", info.Records))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("snapshot:"), " ", s.detail.Render(fmt.Sprintf("%d items", info.SnapshotItems))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("last seen:"), " ", style.Render(lastSeen)),
	)
}

func formatTimestamp(ts, now time.Time) string {
	if now.IsZero() {
		return ts.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := ts.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return ts.Format("15:04")
	}

	return ts.Format("15:04 on 02 Jan")
}
