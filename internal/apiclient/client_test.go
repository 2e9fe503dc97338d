package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/billing", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Correlation-ID"))
		io.WriteString(w, `[{"id":1,"invoiceNumber":"INV-1"},{"id":2,"invoiceNumber":"INV-2"}]`)
	})

	got, err := c.List(context.Background(), "billing")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "INV-1", got[0]["invoiceNumber"])
	assert.Equal(t, "1", got[0].ID())
}

func TestCreateSendsPayloadWithoutMutatingIt(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body["client"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"42","client":"Acme"}`)
	})

	created, err := c.Create(context.Background(), "sales", map[string]any{"client": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID())
}

func TestUpdateTargetsRecordPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/sales/7", r.URL.Path)
		io.WriteString(w, `{"id":"7"}`)
	})

	_, err := c.Update(context.Background(), "sales", "7", map[string]any{"amount": 10})
	require.NoError(t, err)
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.Delete(context.Background(), "sales", "7"))
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "amount is required")
	})

	_, err := c.List(context.Background(), "billing")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Contains(t, statusErr.Body, "amount is required")
}

func TestLookupBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/customer-divisions", r.URL.Path)
		io.WriteString(w, `["North","South"]`)
	})

	got, err := c.CustomerDivisions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"North", "South"}, got)
}

func TestLookupWrappedObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"companies":["Acme","Globex"]}`)
	})

	got, err := c.CustomerCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, got)
}

func TestLookupUnknownWrapperKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":["A"]}`)
	})

	got, err := c.Lookup(context.Background(), "reports/customer-divisions")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got)
}

func TestUploadMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sim-bills/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "bill.pdf", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "pdf-bytes", string(data))

		io.WriteString(w, `"/uploads/bill.pdf"`)
	})

	urls, err := c.Upload(context.Background(), "sim-bills", "bill.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/bill.pdf"}, urls)
}

func TestUploadArrayResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `["/uploads/a.pdf","/uploads/b.pdf"]`)
	})

	urls, err := c.Upload(context.Background(), "reports", "a.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Len(t, urls, 2)
}

func TestUploadRawURLResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "/uploads/raw.pdf")
	})

	urls, err := c.Upload(context.Background(), "reports", "raw.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/raw.pdf"}, urls)
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.List(ctx, "billing")
	assert.Error(t, err)
}
