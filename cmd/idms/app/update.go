package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"idms/cmd/idms/ui"
	"idms/internal/fields"
	"idms/internal/modules"
	"idms/internal/record"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.mode == modeDetail {
			m.detail.Resize(m.width-4, m.height-8)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		if msg.err != nil {
			m.log.Warn("load failed", zap.String("module", msg.key), zap.Error(msg.err))
			cmd := m.pushToast(toastError, "Failed to load records: "+msg.err.Error())
			return m, cmd
		}
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			cmd := m.pushToast(toastError, "Upload failed: "+msg.err.Error())
			return m, cmd
		}
		m.uploadURLs = append(m.uploadURLs, msg.urls...)
		cmd := m.pushToast(toastSuccess, "File uploaded")
		return m, cmd

	case lookupLoadedMsg:
		if msg.err != nil {
			m.log.Warn("lookup failed", zap.String("field", msg.field), zap.Error(msg.err))
			return m, nil
		}
		if m.formOpen {
			m.form.SetOptions(msg.field, msg.options)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			cmd := m.pushToast(toastError, "Export failed: "+msg.err.Error())
			return m, cmd
		}
		cmd := m.pushToast(toastSuccess, "Exported to "+msg.path)
		return m, cmd

	case toastExpiredMsg:
		m.dropToast(msg.id)
		return m, nil

	case configReloadedMsg:
		m.styles = ui.NewStyles(ui.ThemeByName(msg.theme))
		for _, def := range m.defs {
			m.tables[def.Key] = ui.NewRecordTable(m.styles, def)
		}
		cmd := m.pushToast(toastInfo, "Configuration reloaded")
		return m, cmd

	case formSubmittedMsg:
		return m.onFormSubmitted(msg)

	case formCancelledMsg:
		m.formOpen = false
		m.uploadURLs = nil
		m.mode = modeTable
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeDetail:
		return m.updateDetail(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeUpload:
		return m.updateUpload(msg)
	case modePayroll:
		return m.updatePayroll(msg)
	case modeHelp:
		return m.updateHelp(msg)
	default:
		return m.updateTable(msg)
	}
}

func (m Model) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("mutation failed",
			zap.String("module", msg.key),
			zap.String("action", msg.action),
			zap.Error(msg.err))
		// While the form is still open its inline error line is the right
		// surface, matching the field-level validation messages.
		if m.formOpen && msg.action != "delete" {
			m.form.SetError(msg.err.Error())
			return m, nil
		}
		cmd := m.pushToast(toastError, fmt.Sprintf("Failed to %s record: %v", msg.action, msg.err))
		return m, cmd
	}
	m.formOpen = false
	m.uploadURLs = nil
	m.mode = modeTable
	m.clampCursor()
	var text string
	switch msg.action {
	case "create":
		text = "Record created"
	case "update":
		text = "Record updated"
	default:
		text = "Record deleted"
	}
	cmd := m.pushToast(toastSuccess, text)
	return m, cmd
}

func (m Model) onFormSubmitted(msg formSubmittedMsg) (tea.Model, tea.Cmd) {
	if m.uploading {
		cmd := m.pushToast(toastInfo, "Please wait, upload in progress")
		return m, cmd
	}
	def := m.active()
	draft := attachUploads(def, msg.draft, m.uploadURLs)
	if m.editID != "" {
		return m, m.updateCmd(def.Key, m.editID, draft)
	}
	return m, m.createCmd(def.Key, draft)
}

// attachUploads folds uploads from this modal session into the draft.
// Multi-file modules append to the record's existing attachments; single-file
// modules replace the stored URL with the latest upload. With no new uploads
// the draft keeps whatever the record already carried.
func attachUploads(def modules.Definition, draft fields.Draft, urls []string) fields.Draft {
	if def.UploadField == "" || len(urls) == 0 {
		return draft
	}
	if !def.UploadMultiple {
		draft[def.UploadField] = urls[len(urls)-1]
		return draft
	}
	draft[def.UploadField] = append(stringSlice(draft[def.UploadField]), urls...)
	return draft
}

// stringSlice coerces the stored attachment value, which arrives from JSON
// as []any, into a fresh string slice.
func stringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, record.Stringify(e))
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}

func (m Model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.cursor = 0
			return m, nil
		case "enter":
			m.searching = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.saveSession()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Filter):
		m.searching = true
		m.search.Focus()
		return m, nil

	case keyMsg.String() == "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.cursor = 0
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevModule):
		return m.switchModule(m.activeIdx - 1)

	case key.Matches(keyMsg, m.keys.NextModule):
		return m.switchModule(m.activeIdx + 1)

	case key.Matches(keyMsg, m.keys.Reload):
		return m, m.loadCmd(m.active().Key)

	case key.Matches(keyMsg, m.keys.New):
		return m.openCreateForm()

	case key.Matches(keyMsg, m.keys.Edit):
		return m.openEditForm()

	case key.Matches(keyMsg, m.keys.Open):
		return m.openDetail()

	case key.Matches(keyMsg, m.keys.Delete):
		if rec, ok := m.selected(); ok {
			m.confirmID = rec.ID()
			m.mode = modeConfirm
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Upload):
		return m.openUpload()

	case key.Matches(keyMsg, m.keys.Export):
		return m, m.exportCmd(m.active().Key)

	case key.Matches(keyMsg, m.keys.Payroll):
		if m.active().Key == "employees" {
			gross := 0.0
			if rec, ok := m.selected(); ok {
				gross = numericField(rec, "grossSalary")
			}
			m.payroll = NewPayrollModel(m.styles, gross)
			m.mode = modePayroll
		}
		return m, nil
	}

	// Digit keys jump straight to a module.
	if n, err := strconv.Atoi(keyMsg.String()); err == nil {
		idx := n - 1
		if n == 0 {
			idx = 9
		}
		return m.switchModule(idx)
	}
	return m, nil
}

// switchModule leaves the current page, abandoning its list so nothing is
// cached across pages, and opens the target with a fresh fetch.
func (m Model) switchModule(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 {
		idx = len(m.defs) - 1
	}
	if idx >= len(m.defs) {
		idx = 0
	}
	if idx == m.activeIdx {
		return m, nil
	}
	m.activeController().Reset()
	m.activeIdx = idx
	m.cursor = 0
	m.search.SetValue("")
	return m, m.loadCmd(m.active().Key)
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	def := m.active()
	m.form = NewFormModel(m.styles, "New "+def.Title+" Record", def.FormFields, nil)
	m.formOpen = true
	m.editID = ""
	m.uploadURLs = nil
	m.mode = modeForm
	return m, m.lookupCmds()
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok {
		return m, nil
	}
	def := m.active()
	m.form = NewFormModel(m.styles, "Edit "+def.Title+" Record", def.FormFields, rec)
	m.formOpen = true
	m.editID = rec.ID()
	m.uploadURLs = nil
	m.mode = modeForm
	return m, m.lookupCmds()
}

// lookupCmds fetches options for every lookup-backed field of the active
// module, concurrently.
func (m Model) lookupCmds() tea.Cmd {
	def := m.active()
	if len(def.LookupFields) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(def.LookupFields))
	for field, path := range def.LookupFields {
		cmds = append(cmds, m.lookupCmd(field, path))
	}
	return tea.Batch(cmds...)
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok {
		return m, nil
	}
	def := m.active()
	m.detail = NewDetailModel(m.styles, def.Title+" Record", def.ViewFields, rec, m.width-4, m.height-8)
	m.detailID = rec.ID()
	m.mode = modeDetail
	return m, nil
}

func (m Model) openUpload() (tea.Model, tea.Cmd) {
	def := m.active()
	if def.UploadField == "" {
		cmd := m.pushToast(toastInfo, "This module has no file uploads")
		return m, cmd
	}
	picker := filepicker.New()
	for ext := range allowedUploadExts {
		picker.AllowedTypes = append(picker.AllowedTypes, ext)
	}
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}
	picker.Height = max(m.height-10, 5)
	m.picker = picker
	m.mode = modeUpload
	return m, m.picker.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+u" && m.active().UploadField != "" {
		return m.openUpload()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			m.mode = modeTable
			return m, nil
		case "e":
			m.mode = modeTable
			return m.openEditForm()
		case "d":
			m.confirmID = m.detailID
			m.mode = modeConfirm
			return m, nil
		case "s":
			if m.active().Key == "employees" {
				m.sess.EmployeeID = m.detailID
				m.saveSession()
				cmd := m.pushToast(toastSuccess, "Signed in as employee "+m.detailID)
				return m, cmd
			}
		}
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(keyMsg.String()) {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.mode = modeTable
		return m, m.deleteCmd(m.active().Key, id)
	case "n", "esc":
		m.confirmID = ""
		m.mode = modeTable
		return m, nil
	}
	return m, nil
}

func (m Model) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = m.returnModeAfterUpload()
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		if err := validateUploadFile(path); err != nil {
			// Rejected files are never sent to the server.
			return m, tea.Batch(cmd, m.pushToast(toastError, err.Error()))
		}
		def := m.active()
		m.uploading = true
		m.mode = m.returnModeAfterUpload()
		return m, tea.Batch(cmd, m.uploadCmd(def.Collection, def.UploadField, path))
	}
	return m, cmd
}

const maxUploadSize = 10 << 20 // 10 MB

var allowedUploadExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".csv": true, ".txt": true, ".png": true, ".jpg": true, ".jpeg": true,
}

// validateUploadFile checks extension and size before any bytes leave the
// machine. All failing reasons are reported together.
func validateUploadFile(path string) error {
	var reasons []string
	if ext := strings.ToLower(filepath.Ext(path)); !allowedUploadExts[ext] {
		reasons = append(reasons, fmt.Sprintf("file type %q is not allowed", ext))
	}
	if info, err := os.Stat(path); err != nil {
		reasons = append(reasons, "file is not readable")
	} else if info.Size() > maxUploadSize {
		reasons = append(reasons, fmt.Sprintf("file exceeds the %d MB limit", maxUploadSize>>20))
	}
	if len(reasons) > 0 {
		return errors.New(strings.Join(reasons, "; "))
	}
	return nil
}

// returnModeAfterUpload sends the user back to the form when one is open,
// otherwise to the table.
func (m Model) returnModeAfterUpload() viewMode {
	if m.formOpen {
		return modeForm
	}
	return modeTable
}

func (m Model) updatePayroll(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = modeTable
		return m, nil
	}
	var cmd tea.Cmd
	m.payroll, cmd = m.payroll.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			m.mode = modeTable
		}
	}
	return m, nil
}

// filtered returns the active module's records under the current filter.
func (m Model) filtered() []record.Record {
	return m.activeController().Filtered(m.search.Value())
}

// selected returns the record under the cursor.
func (m Model) selected() (record.Record, bool) {
	rows := m.filtered()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.filtered()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func numericField(rec record.Record, name string) float64 {
	switch v := rec[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return n
		}
	}
	return 0
}
