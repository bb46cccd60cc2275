package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m editorModel) View() string {
	if m.showInfo {
		return m.styles.app.Render(m.styles.overlay.Render(renderBuildInfo(m.buildInfo)))
	}

	var b strings.Builder

	title := m.date.Format("Monday, 2 January 2006")
	if m.services.DiaryCache.HasDirtyCache(m.dateKey()) {
		title += m.styles.dirty.Render(" •")
	}
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(uiDivider))
	b.WriteString("\n")

	if m.loading && m.editor.Value() == "" {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else {
		b.WriteString(m.styles.text.Render(m.editor.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render(uiDivider))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(helpLine()))

	return m.styles.app.Render(b.String())
}

func (m editorModel) statusLine() string {
	parts := []string{m.onlineLabel(), m.syncLabel(), statsLabel(m.stats)}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " │ ")
}

func (m editorModel) onlineLabel() string {
	switch {
	case m.online.Checking:
		return m.styles.saving.Render("○ checking")
	case m.online.IsOnline:
		return m.styles.online.Render("● online")
	default:
		return m.styles.offline.Render("● offline")
	}
}

func (m editorModel) syncLabel() string {
	s := m.syncState
	switch s.Status {
	case models.SyncStatusSaving:
		return m.styles.saving.Render(m.spinner.View() + " " + s.Message)
	case models.SyncStatusSaved:
		return m.styles.saved.Render("✓ " + s.Message)
	case models.SyncStatusError:
		label := s.Message
		if s.CurrentDate != "" {
			label += " (" + s.CurrentDate + ")"
		}
		if s.Message == models.SyncMessageOffline {
			return m.styles.offline.Render(label)
		}
		return m.styles.failed.Render(label)
	default:
		return m.styles.help.Render("idle")
	}
}

func statsLabel(stats models.CacheStats) string {
	if stats.PendingSync == 0 {
		return fmt.Sprintf("%d cached", stats.TotalCached)
	}
	return fmt.Sprintf("%d cached, %d pending", stats.TotalCached, stats.PendingSync)
}

func helpLine() string {
	help := keys.help()
	parts := make([]string, 0, len(help))
	for _, binding := range help {
		h := binding.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " │ ")
}
