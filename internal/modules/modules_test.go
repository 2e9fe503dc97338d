package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idms/internal/fields"
)

func TestAllModulesWellFormed(t *testing.T) {
	defs := All()
	require.Len(t, defs, 12)

	seen := map[string]bool{}
	for _, def := range defs {
		t.Run(def.Key, func(t *testing.T) {
			assert.NotEmpty(t, def.Key)
			assert.NotEmpty(t, def.Title)
			assert.NotEmpty(t, def.Collection)
			assert.NotEmpty(t, def.FormFields)
			assert.NotEmpty(t, def.ViewFields)
			assert.NotEmpty(t, def.Columns)
			assert.False(t, seen[def.Key], "duplicate key")
			seen[def.Key] = true

			viewNames := map[string]bool{}
			for _, vf := range def.ViewFields {
				viewNames[vf.Name] = true
			}

			for _, col := range def.Columns {
				assert.True(t, viewNames[col.Name], "column %s missing from view fields", col.Name)
			}
			for _, name := range def.Searchable {
				assert.True(t, viewNames[name], "searchable %s missing from view fields", name)
			}
			for _, name := range def.DateFields {
				assert.True(t, viewNames[name], "date field %s missing from view fields", name)
			}

			require.Equal(t, len(def.CSVHeader), len(def.CSVFields))
			assert.Equal(t, "id", def.CSVFields[0])
		})
	}
}

func TestByKey(t *testing.T) {
	def, ok := ByKey("sales")
	require.True(t, ok)
	assert.Equal(t, "Sales", def.Title)

	_, ok = ByKey("nope")
	assert.False(t, ok)
}

func TestKeysOrder(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 12)
	assert.Equal(t, "bank", keys[0])
	assert.Equal(t, "simbills", keys[11])
}

func TestSalesPayloadRename(t *testing.T) {
	def, ok := ByKey("sales")
	require.True(t, ok)

	out := def.RenamePayload(fields.Draft{"clientName": "Acme", "amount": float64(100)})
	assert.Equal(t, "Acme", out["client"])
	assert.NotContains(t, out, "clientName")
	assert.Equal(t, float64(100), out["amount"])
}

func TestRenamePayloadNoRenamesReturnsSameDraft(t *testing.T) {
	def, ok := ByKey("bank")
	require.True(t, ok)
	d := fields.Draft{"bankName": "HDFC"}
	assert.Equal(t, d, def.RenamePayload(d))
}

func TestEmployeeValidation(t *testing.T) {
	valid := fields.Draft{
		"email":    "a@b.co",
		"phone":    "98765 43210",
		"password": "longenough",
	}
	assert.NoError(t, validateEmployee(valid))

	badEmail := fields.Draft{"email": "not-an-email", "phone": "9876543210", "password": "longenough"}
	assert.Error(t, validateEmployee(badEmail))

	shortPhone := fields.Draft{"email": "a@b.co", "phone": "12345", "password": "longenough"}
	assert.Error(t, validateEmployee(shortPhone))

	longPhone := fields.Draft{"email": "a@b.co", "phone": "12345678901", "password": "longenough"}
	assert.Error(t, validateEmployee(longPhone))

	shortPassword := fields.Draft{"email": "a@b.co", "phone": "9876543210", "password": "short"}
	assert.Error(t, validateEmployee(shortPassword))

	// Empty password is allowed on edit; the backend keeps the old one.
	emptyPassword := fields.Draft{"email": "a@b.co", "phone": "9876543210", "password": ""}
	assert.NoError(t, validateEmployee(emptyPassword))
}

func TestUploadModules(t *testing.T) {
	reports, ok := ByKey("reports")
	require.True(t, ok)
	assert.Equal(t, "attachments", reports.UploadField)
	assert.True(t, reports.UploadMultiple)
	assert.Len(t, reports.LookupFields, 2)

	simbills, ok := ByKey("simbills")
	require.True(t, ok)
	assert.Equal(t, "documentUrl", simbills.UploadField)
	assert.False(t, simbills.UploadMultiple)
}
