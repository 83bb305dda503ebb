package initializers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFileAllowed(t *testing.T) {
	Conf = UploadConfig{MaxSize: 1024, FileTypes: []string{"video/mp4", "image/png"}}

	assert.NoError(t, CheckFileAllowed(100, "video/mp4"))
	assert.NoError(t, CheckFileAllowed(100, "video/mp4; codecs=avc1"))
	assert.Error(t, CheckFileAllowed(100, "application/pdf"))
	assert.Error(t, CheckFileAllowed(2048, "video/mp4"))
}

func TestInitUploadsEnvDefaults(t *testing.T) {
	t.Setenv("UPLOADS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MAX_FILE_SIZE", "123")
	t.Setenv("ALLOWED_FILE_TYPES", "")

	InitUploads()

	assert.Equal(t, int64(123), Conf.MaxSize)
	assert.Contains(t, Conf.FileTypes, "video/mp4")
	assert.Contains(t, Conf.FileTypes, "image/png")
}

func TestInitUploadsYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads.yaml")
	yaml := "max_file_size: 2048\nallowed_file_types:\n  - audio/wav\n"
	assert.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("UPLOADS_CONFIG_FILE", path)
	t.Setenv("MAX_FILE_SIZE", "999999")

	InitUploads()

	assert.Equal(t, int64(2048), Conf.MaxSize)
	assert.Equal(t, []string{"audio/wav"}, Conf.FileTypes)
}
