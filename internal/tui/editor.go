package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

const statusDisplayTime = 3 * time.Second

type editorModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	clock     utils.Clock

	date    time.Time
	editor  textarea.Model
	spinner spinner.Model
	loading bool

	syncState models.SyncState
	stats     models.CacheStats
	online    models.OnlineState
	theme     models.Theme
	styles    styles

	status    string
	statusSeq int
	showInfo  bool
	width     int

	// copyToClipboard is swapped in tests.
	copyToClipboard func(string) error
}

func newEditorModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, clock utils.Clock) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Write about your day..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := editorModel{
		ctx:             ctx,
		services:        services,
		buildInfo:       buildInfo,
		clock:           clock,
		date:            startOfDay(clock.Now()),
		editor:          ta,
		spinner:         sp,
		loading:         true,
		copyToClipboard: clipboard.WriteAll,
	}
	m.editor.SetValue(services.DiaryCache.GetDisplayContent(m.dateKey()))
	m.refreshState()
	return m
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(m.dateKey()), textarea.Blink, m.spinner.Tick)
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(max(msg.Width-4, 10))
		m.editor.SetHeight(max(msg.Height-8, 3))
		return m, nil
	case stateChangedMsg:
		m.refreshState()
		return m, nil
	case diaryLoadedMsg:
		// A slow load for a date the user already left is dropped.
		if msg.date != m.dateKey() {
			return m, nil
		}
		m.loading = false
		// Text typed while the load was running is newer than anything it
		// brought back.
		if !m.services.DiaryCache.HasDirtyCache(msg.date) {
			m.editor.SetValue(msg.content)
		}
		return m, nil
	case forceSyncDoneMsg:
		if msg.allSaved {
			return m.setStatus("All entries saved")
		}
		return m.setStatus("Some entries are not saved yet")
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Entry copied to clipboard")
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m editorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.prevDay):
		return m.openDate(m.date.AddDate(0, 0, -1))
	case key.Matches(msg, keys.nextDay):
		return m.openDate(m.date.AddDate(0, 0, 1))
	case key.Matches(msg, keys.today):
		return m.openDate(startOfDay(m.clock.Now()))
	case key.Matches(msg, keys.sync):
		return m, m.cmdForceSync()
	case key.Matches(msg, keys.theme):
		m.theme = m.services.ThemeService.Toggle(m.ctx)
		m.styles = stylesFor(m.theme)
		return m.setStatus("Theme: " + string(m.theme))
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.editor.Value())
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.services.DiaryCache.UpdateLocalCache(m.ctx, m.dateKey(), after)
	}
	return m, cmd
}

// openDate switches the editor to date. The cached content shows at once
// and the remote copy replaces it when the load completes.
func (m editorModel) openDate(date time.Time) (tea.Model, tea.Cmd) {
	m.date = date
	m.loading = true
	m.editor.SetValue(m.services.DiaryCache.GetDisplayContent(m.dateKey()))
	return m, m.cmdLoad(m.dateKey())
}

func (m editorModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *editorModel) refreshState() {
	m.syncState = m.services.DiaryCache.SyncState().Get()
	m.stats = m.services.DiaryCache.Stats().Get()
	m.online = m.services.OnlineService.State().Get()
	m.theme = m.services.ThemeService.Theme()
	m.styles = stylesFor(m.theme)
}

func (m editorModel) dateKey() string {
	return models.FormatDate(m.date)
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m editorModel) cmdLoad(date string) tea.Cmd {
	ctx, cache := m.ctx, m.services.DiaryCache
	return func() tea.Msg {
		return diaryLoadedMsg{date: date, content: cache.LoadDiary(ctx, date)}
	}
}

func (m editorModel) cmdForceSync() tea.Cmd {
	ctx, cache := m.ctx, m.services.DiaryCache
	return func() tea.Msg {
		saved := cache.ForceSyncNow(ctx)
		if !saved {
			cache.ScheduleSync()
		}
		return forceSyncDoneMsg{allSaved: saved}
	}
}

func (m editorModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
