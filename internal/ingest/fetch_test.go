package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html>
<head><title>Careers</title></head>
<body>
<nav>Home | Jobs</nav>
<div class="job-description">
  <h1>Senior Go Engineer</h1>
  <p>Build matching systems in Go.</p>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestURL_FetchesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Senior Go Engineer")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_UsesJobSelectors(t *testing.T) {
	text, err := ExtractMainText(samplePage, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build matching systems in Go.")
	assert.NotContains(t, text, "Home | Jobs", "nav noise must be stripped")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain content</p></body></html>`
	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Plain content", text)
}

func TestJobDescriptionFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	text, err := JobDescriptionFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Build matching systems in Go.")
}
