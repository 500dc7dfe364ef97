// Package config provides the configuration loader for hoard.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the config file looked up in the working directory
	// when no explicit path is given.
	DefaultFilename = "hoard.yaml"

	defaultOrganization = "ch.trai"
	defaultPlatform     = "1.0"
)

// File represents the structure of the hoard.yaml configuration file.
type File struct {
	Version      string  `yaml:"version"`
	Organization string  `yaml:"organization"`
	Platform     string  `yaml:"platform"`
	Local        TierDTO `yaml:"local"`
	Global       TierDTO `yaml:"global"`
}

// TierDTO configures one cache tier.
type TierDTO struct {
	Dir string `yaml:"dir"`
}

// Load reads the configuration file at path and returns the resolved
// settings. A missing file yields the defaults: fixed organization and
// platform, cache tiers under the user cache directory.
func Load(path string) (domain.Settings, error) {
	settings, err := defaults()
	if err != nil {
		return domain.Settings{}, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if f.Organization != "" {
		settings.Organization = f.Organization
	}
	if f.Platform != "" {
		settings.Platform = f.Platform
	}
	if f.Local.Dir != "" {
		settings.LocalDir = filepath.Clean(f.Local.Dir)
	}
	if f.Global.Dir != "" {
		settings.GlobalDir = filepath.Clean(f.Global.Dir)
	}
	return settings, nil
}

func defaults() (domain.Settings, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	root := filepath.Join(cacheDir, "hoard")
	return domain.Settings{
		Organization: defaultOrganization,
		Platform:     defaultPlatform,
		LocalDir:     filepath.Join(root, "local"),
		GlobalDir:    filepath.Join(root, "global"),
	}, nil
}
