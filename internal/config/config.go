package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
	yaml "gopkg.in/yaml.v2"
)

// WebZipFile is the optional config file webzip looks for in its working directory
const WebZipFile = "webzip.yaml"

// DefaultFiles is the output set of an emscripten build of CharacterGame
var DefaultFiles = []string{
	"CharacterGame.data",
	"CharacterGame.js",
	"CharacterGame.wasm",
	"index.html",
}

// WebZipConfig holds archiver configuration
type WebZipConfig struct {
	Files  []string `yaml:"files"`
	Output string   `yaml:"output"`

	// S3 publishing, disabled while S3Bucket is empty
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3Bucket    string `yaml:"s3_bucket"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`
	S3Region    string `yaml:"s3_region"`
	S3Prefix    string `yaml:"s3_prefix"`

	// S3MaxAttempts caps upload attempts, 0 keeps the SDK default
	S3MaxAttempts int `yaml:"s3_max_attempts"`
}

// DefaultWebZipConfig returns the archiver defaults
func DefaultWebZipConfig() *WebZipConfig {
	files := make([]string, len(DefaultFiles))
	copy(files, DefaultFiles)
	return &WebZipConfig{
		Files:    files,
		Output:   "out.zip",
		S3Region: "us-east-1",
	}
}

// LoadWebZip loads the archiver configuration from dir.
// Environment variables take precedence over the config file
func LoadWebZip(dir string) (*WebZipConfig, error) {
	cfg := DefaultWebZipConfig()

	// env caches the environment on first use, re-read it for every load
	env.Load()

	data, err := os.ReadFile(filepath.Join(dir, WebZipFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := env.Str("WEBZIP_FILES"); v != "" {
		cfg.Files = splitList(v)
	}
	cfg.Output = env.Str("WEBZIP_OUTPUT", cfg.Output)
	cfg.S3Endpoint = env.Str("WEBZIP_S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Bucket = env.Str("WEBZIP_S3_BUCKET", cfg.S3Bucket)
	cfg.S3AccessKey = env.Str("WEBZIP_S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = env.Str("WEBZIP_S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Region = env.Str("WEBZIP_S3_REGION", cfg.S3Region)
	cfg.S3Prefix = env.Str("WEBZIP_S3_PREFIX", cfg.S3Prefix)
	cfg.S3MaxAttempts = env.Int("WEBZIP_S3_MAX_ATTEMPTS", cfg.S3MaxAttempts)

	return cfg, nil
}

// Validate checks that the configuration can produce an archive
func (c *WebZipConfig) Validate() error {
	if len(c.Files) == 0 {
		return errors.New("no files to archive")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// Publish reports whether the archive should be uploaded after it is built
func (c *WebZipConfig) Publish() bool {
	return c.S3Bucket != ""
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
