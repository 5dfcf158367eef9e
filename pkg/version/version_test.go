package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.4.0"}`))
	}))
	defer server.Close()

	original := latestReleaseURL
	latestReleaseURL = server.URL
	t.Cleanup(func() { latestReleaseURL = original })

	t.Run("Newer release", func(t *testing.T) {
		latest, ok := latestRelease("1.3.2")
		assert.True(t, ok)
		assert.Equal(t, "1.4.0", latest)
	})

	t.Run("Up to date", func(t *testing.T) {
		_, ok := latestRelease("1.4.0")
		assert.False(t, ok)
	})

	t.Run("Dev builds are skipped", func(t *testing.T) {
		_, ok := latestRelease("0.0.0-dev")
		assert.False(t, ok)
	})
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = "1.2.3", "", ""
	assert.Equal(t, "1.2.3 (development)", FormatVersion())

	Version, Commit, BuildTime = "1.2.3", "abc1234", "2025-01-02T03:04:05Z"
	assert.Equal(t, "1.2.3 (commit: abc1234, built at: 2025-01-02T03:04:05Z)", FormatVersion())

	Version, Commit, BuildTime = "1.2.3", "abc1234", ""
	assert.Equal(t, "1.2.3 (commit: abc1234)", FormatVersion())
}
