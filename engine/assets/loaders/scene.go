package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

var ErrUnknownSceneFormat = errors.New("unknown scene format")

// Prevent runaway reads from a mistyped path.
const maxSceneSize = 1024 * 1024

type SceneLoader struct{}

func (sl *SceneLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSceneSize {
		return nil, fmt.Errorf("%s: scene file too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := DecodeScene(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeScene,
		Name:     cfg.Name,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     cfg,
	}, nil
}

func (sl *SceneLoader) Unload(*metadata.Resource) error {
	return nil
}

// IsSceneFile reports whether the extension names a supported scene format.
func IsSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// DecodeScene parses scene data in the format named by ext (".toml",
// ".yaml" or ".yml"). Unknown keys are rejected.
func DecodeScene(data []byte, ext string) (*metadata.SceneConfig, error) {
	cfg := &metadata.SceneConfig{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSceneFormat, ext)
	}
	return cfg, nil
}
