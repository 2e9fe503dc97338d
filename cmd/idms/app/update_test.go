package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"idms/cmd/idms/ui"
	"idms/internal/config"
	"idms/internal/fields"
	"idms/internal/modules"
)

func newTestModel(t *testing.T, moduleKey string) Model {
	t.Helper()
	m := New(config.Default(), zap.NewNop())
	for i, def := range m.defs {
		if def.Key == moduleKey {
			m.activeIdx = i
			return m
		}
	}
	t.Fatalf("module %q missing", moduleKey)
	return m
}

func TestSubmitWhileUploadingRejected(t *testing.T) {
	m := newTestModel(t, "simbills")
	m.formOpen = true
	m.mode = modeForm
	m.uploading = true

	got, _ := m.Update(formSubmittedMsg{draft: fields.Draft{"simNumber": "SIM-1"}})
	gm := got.(Model)

	require.Len(t, gm.toasts, 1)
	assert.Contains(t, gm.toasts[0].text, "Please wait")
	// The guard returns before any create fires: the modal stays open with
	// the draft, waiting for the upload to settle.
	assert.True(t, gm.formOpen)
	assert.Equal(t, modeForm, gm.mode)
	assert.True(t, gm.uploading)
}

func TestSubmitAfterUploadFiresEdit(t *testing.T) {
	m := newTestModel(t, "reports")
	m.formOpen = true
	m.mode = modeForm
	m.editID = "7"
	m.uploadURLs = []string{"/uploads/new.pdf"}

	gm, cmd := m.Update(formSubmittedMsg{draft: fields.Draft{"attachments": []any{"/uploads/old.pdf"}}})
	require.NotNil(t, cmd, "with no upload in flight the edit must submit")
	assert.Empty(t, gm.(Model).toasts)
}

func TestAttachUploadsSingleReplacesWithLatest(t *testing.T) {
	def, ok := modules.ByKey("simbills")
	require.True(t, ok)

	draft := attachUploads(def, fields.Draft{"documentUrl": "/uploads/old.pdf"},
		[]string{"/uploads/a.pdf", "/uploads/b.pdf"})
	assert.Equal(t, "/uploads/b.pdf", draft["documentUrl"])
}

func TestAttachUploadsMultipleAppendsToExisting(t *testing.T) {
	def, ok := modules.ByKey("reports")
	require.True(t, ok)

	// Stored attachments arrive from JSON as []any; new uploads join them.
	draft := attachUploads(def, fields.Draft{"attachments": []any{"/uploads/old.pdf"}},
		[]string{"/uploads/new.pdf"})
	assert.Equal(t, []string{"/uploads/old.pdf", "/uploads/new.pdf"}, draft["attachments"])
}

func TestAttachUploadsNoNewUploadsKeepsStored(t *testing.T) {
	def, ok := modules.ByKey("simbills")
	require.True(t, ok)

	draft := attachUploads(def, fields.Draft{"documentUrl": "/uploads/old.pdf"}, nil)
	assert.Equal(t, "/uploads/old.pdf", draft["documentUrl"])
}

func TestMutationErrorShowsOnOpenForm(t *testing.T) {
	m := newTestModel(t, "employees")
	m.form = NewFormModel(ui.DefaultStyles(), "t", m.active().FormFields, nil)
	m.formOpen = true
	m.mode = modeForm

	got, cmd := m.Update(mutationDoneMsg{key: "employees", action: "create",
		err: errors.New("enter a valid email address")})
	gm := got.(Model)

	assert.Nil(t, cmd)
	assert.True(t, gm.formOpen)
	assert.Equal(t, modeForm, gm.mode)
	assert.Contains(t, gm.form.View(), "enter a valid email address")
	assert.Empty(t, gm.toasts, "form errors render inline, not as a toast")
}

func TestDeleteErrorStillToasts(t *testing.T) {
	m := newTestModel(t, "billing")

	got, cmd := m.Update(mutationDoneMsg{key: "billing", action: "delete",
		err: errors.New("conflict")})
	gm := got.(Model)

	require.NotNil(t, cmd)
	require.Len(t, gm.toasts, 1)
	assert.Contains(t, gm.toasts[0].text, "conflict")
}
