package initializers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UploadConfig is the server-side upload policy. Values come from the
// environment, optionally overridden by a YAML file so deployments can tune
// limits without re-rolling env vars.
type UploadConfig struct {
	MaxSize   int64
	FileTypes []string
}

// Conf is populated once by InitUploads and read by the upload handler.
var Conf UploadConfig

// uploadsConfigYAML mirrors the optional on-disk config file.
type uploadsConfigYAML struct {
	MaxFileSize      int64    `yaml:"max_file_size"`
	AllowedFileTypes []string `yaml:"allowed_file_types"`
}

func loadUploadsYAML() (*uploadsConfigYAML, error) {
	path := os.Getenv("UPLOADS_CONFIG_FILE")
	if strings.TrimSpace(path) == "" {
		path = "config/uploads.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg uploadsConfigYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitUploads resolves the upload policy. The YAML file wins over env vars
// when present; a missing file is not an error.
func InitUploads() {
	Conf = UploadConfig{
		MaxSize:   parseInt64(os.Getenv("MAX_FILE_SIZE"), 104857600),
		FileTypes: parseFileTypes(os.Getenv("ALLOWED_FILE_TYPES")),
	}
	if yamlCfg, err := loadUploadsYAML(); err == nil && yamlCfg != nil {
		if yamlCfg.MaxFileSize > 0 {
			Conf.MaxSize = yamlCfg.MaxFileSize
		}
		if len(yamlCfg.AllowedFileTypes) > 0 {
			Conf.FileTypes = yamlCfg.AllowedFileTypes
		}
	}
}

func parseInt64(val string, def int64) int64 {
	if val == "" {
		return def
	}
	v, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return def
	}
	return v
}

func parseFileTypes(val string) []string {
	if val == "" {
		return []string{
			"video/mp4", "video/quicktime", "video/webm",
			"audio/mpeg", "audio/wav", "audio/ogg",
			"image/jpeg", "image/png", "image/gif", "image/webp",
		}
	}
	return strings.Split(val, ",")
}

func baseMIME(mime string) string {
	parts := strings.Split(mime, ";")
	return strings.TrimSpace(parts[0])
}

// CheckFileAllowed validates an upload against the active policy. The mime
// argument must be the server-detected content type, never the client header.
func CheckFileAllowed(size int64, mime string) error {
	if size > Conf.MaxSize {
		return fmt.Errorf("file size exceeds the limit")
	}
	incoming := baseMIME(mime)
	for _, t := range Conf.FileTypes {
		if baseMIME(t) == incoming {
			return nil
		}
	}
	return fmt.Errorf("file type is not allowed")
}
