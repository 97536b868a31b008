// Package config provides the settings-file loader for cuprov.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the optional settings file looked up in the working
// directory. Provisioning works without it; every field has a default.
const DefaultFilename = "cuprov.yaml"

// Settings are the user-tunable provisioning knobs.
type Settings struct {
	// SourceDir holds the native shim sources.
	SourceDir string
	// ArtifactDir receives the compiled artifacts.
	ArtifactDir string
	// SearchRoots are extra toolkit roots searched after the env overrides.
	SearchRoots []string
	// HostCompiler overrides the platform-default host compiler.
	HostCompiler string
	// Capability pins the target capability, bypassing device enumeration.
	// Zero value means unpinned.
	Capability domain.Capability
	// CapabilityPinned reports whether Capability was set explicitly.
	CapabilityPinned bool
}

// settingsDTO mirrors the YAML schema.
type settingsDTO struct {
	SourceDir    string   `yaml:"sourceDir"`
	ArtifactDir  string   `yaml:"artifactDir"`
	SearchRoots  []string `yaml:"searchRoots"`
	HostCompiler string   `yaml:"hostCompiler"`
	Capability   string   `yaml:"capability"`
}

// Loader reads the settings file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the settings from the given working directory. A missing file
// yields the defaults, not an error.
func (l *Loader) Load(cwd string) (*Settings, error) {
	settings := &Settings{
		SourceDir:   filepath.Join(cwd, "native"),
		ArtifactDir: filepath.Join(cwd, "artifacts"),
	}

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var dto settingsDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if dto.SourceDir != "" {
		settings.SourceDir = resolve(cwd, dto.SourceDir)
	}
	if dto.ArtifactDir != "" {
		settings.ArtifactDir = resolve(cwd, dto.ArtifactDir)
	}
	settings.SearchRoots = dto.SearchRoots
	settings.HostCompiler = dto.HostCompiler
	if dto.Capability != "" {
		cap, err := domain.ParseCapability(dto.Capability)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		settings.Capability = cap
		settings.CapabilityPinned = true
	}

	return settings, nil
}

func resolve(cwd, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
