// Package app implements the interactive terminal client. One Model drives
// every module; the per-module behavior comes entirely from the module
// definitions, never from module-specific view code.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"idms/cmd/idms/ui"
	"idms/internal/apiclient"
	"idms/internal/config"
	"idms/internal/controller"
	"idms/internal/fields"
	"idms/internal/modules"
	"idms/internal/session"
)

type viewMode int

const (
	modeTable viewMode = iota
	modeForm
	modeDetail
	modeConfirm
	modeUpload
	modePayroll
	modeHelp
)

// requestTimeout bounds each background API call issued by the UI.
const requestTimeout = 30 * time.Second

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	log    *zap.Logger
	styles ui.Styles
	api    *apiclient.Client

	defs        []modules.Definition
	controllers map[string]*controller.Controller
	tables      map[string]ui.RecordTable
	activeIdx   int

	mode   viewMode
	cursor int

	searching bool
	search    textinput.Model

	form       FormModel
	formOpen   bool
	editID     string // record being edited, "" for create
	uploadURLs []string
	uploading  bool

	detail   DetailModel
	detailID string

	confirmID string

	picker  filepicker.Model
	payroll PayrollModel

	spin spinner.Model
	keys keyMap
	help help.Model

	toasts   []toast
	toastSeq int

	sess        session.Session
	sessionPath string

	width  int
	height int
}

// New wires the application model from config. The API client and one
// controller per module are created up front; records are fetched lazily
// when a module is first opened.
func New(cfg config.Config, log *zap.Logger) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	api := apiclient.New(cfg.API.BaseURL, cfg.APITimeout(), log)

	defs := modules.All()
	controllers := make(map[string]*controller.Controller, len(defs))
	tables := make(map[string]ui.RecordTable, len(defs))
	for _, def := range defs {
		controllers[def.Key] = controller.New(def, api, log)
		tables[def.Key] = ui.NewRecordTable(styles, def)
	}

	search := textinput.New()
	search.Placeholder = "Filter records..."
	search.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Info

	m := Model{
		cfg:         cfg,
		log:         log,
		styles:      styles,
		api:         api,
		defs:        defs,
		controllers: controllers,
		tables:      tables,
		search:      search,
		spin:        sp,
		keys:        defaultKeyMap(),
		help:        help.New(),
		sessionPath: session.DefaultPath(),
	}

	if sess, err := session.Load(m.sessionPath); err == nil {
		m.sess = sess
		for i, def := range defs {
			if def.Key == sess.LastModule {
				m.activeIdx = i
				break
			}
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd(m.active().Key))
}

func (m Model) active() modules.Definition {
	return m.defs[m.activeIdx]
}

func (m Model) activeController() *controller.Controller {
	return m.controllers[m.active().Key]
}

// loadCmd fetches the module's records in the background.
func (m Model) loadCmd(key string) tea.Cmd {
	ctrl := m.controllers[key]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return recordsLoadedMsg{key: key, err: ctrl.Load(ctx)}
	}
}

func (m Model) createCmd(key string, draft fields.Draft) tea.Cmd {
	ctrl := m.controllers[key]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{key: key, action: "create", err: ctrl.Create(ctx, draft)}
	}
}

func (m Model) updateCmd(key, id string, draft fields.Draft) tea.Cmd {
	ctrl := m.controllers[key]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{key: key, action: "update", err: ctrl.Update(ctx, id, draft)}
	}
}

func (m Model) deleteCmd(key, id string) tea.Cmd {
	ctrl := m.controllers[key]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{key: key, action: "delete", err: ctrl.Delete(ctx, id)}
	}
}

// uploadCmd streams a local file to the module's upload endpoint.
func (m Model) uploadCmd(collection, field, path string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadDoneMsg{field: field, err: err}
		}
		defer f.Close()
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		urls, err := api.Upload(ctx, collection, filepath.Base(path), f)
		return uploadDoneMsg{field: field, urls: urls, err: err}
	}
}

// lookupCmd fetches dropdown options for one lookup-backed field.
func (m Model) lookupCmd(field, path string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		opts, err := api.Lookup(ctx, path)
		return lookupLoadedMsg{field: field, options: opts, err: err}
	}
}

// exportCmd writes the module's current records to a timestamped CSV file
// under the configured export directory.
func (m Model) exportCmd(key string) tea.Cmd {
	ctrl := m.controllers[key]
	dir := m.cfg.Export.Dir
	return func() tea.Msg {
		data, err := ctrl.ExportCSV()
		if err != nil {
			return exportDoneMsg{key: key, err: err}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{key: key, err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", key, time.Now().Format("20060102-150405")))
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			return exportDoneMsg{key: key, err: err}
		}
		return exportDoneMsg{key: key, path: path}
	}
}

// saveSession persists the session for the next run. Failures are logged and
// otherwise ignored; the session is a convenience.
func (m Model) saveSession() {
	m.sess.LastModule = m.active().Key
	if err := session.Save(m.sessionPath, m.sess); err != nil {
		m.log.Warn("session save failed", zap.Error(err))
	}
}
