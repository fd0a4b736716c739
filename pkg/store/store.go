// Package store maps profile names to files under a resolved
// configuration directory. The store exclusively owns the on-disk
// layout <ConfigDir>/profiles/<name>; the directory listing is the
// source of truth for enumeration, there is no index file.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/envprof/pkg/config"
	"github.com/arthur-debert/envprof/pkg/errors"
	"github.com/arthur-debert/envprof/pkg/filesystem"
	"github.com/arthur-debert/envprof/pkg/logging"
	"github.com/arthur-debert/envprof/pkg/types"
)

// ProfilesDirName is the fixed subdirectory under the config dir that
// holds one file per profile.
const ProfilesDirName = "profiles"

// rootPrefix is the default installation prefix when running with
// elevated privilege.
const rootPrefix = "/usr/local"

// Store resolves profile names to files and owns their lifecycle on
// disk.
type Store struct {
	configDir string
	fs        types.FS
}

// ResolveConfigDir determines the configuration directory. An explicit
// override wins; otherwise the directory derives from the prefix:
// <prefix>/.<appName> when the prefix is the invoking user's home
// directory, <prefix>/etc/<appName> anywhere else. The default prefix
// is /usr/local when privileged, the home directory otherwise.
func ResolveConfigDir(cfg *config.Config, privileged bool) (string, error) {
	if cfg.ConfigDir != "" {
		return cfg.ConfigDir, nil
	}
	if cfg.AppName == "" {
		return "", errors.NewConfigError(
			"cannot determine config directory: no application name and no explicit override")
	}

	home := xdg.Home
	prefix := cfg.Prefix
	if prefix == "" {
		if privileged {
			prefix = rootPrefix
		} else {
			prefix = home
		}
	}

	if prefix == home {
		return filepath.Join(prefix, "."+cfg.AppName), nil
	}
	return filepath.Join(prefix, "etc", cfg.AppName), nil
}

// New builds a Store for cfg, deriving the config directory from the
// real process privileges and using the OS filesystem.
func New(cfg *config.Config) (*Store, error) {
	dir, err := ResolveConfigDir(cfg, os.Geteuid() == 0)
	if err != nil {
		return nil, err
	}
	return NewWithFS(dir, filesystem.NewOS()), nil
}

// NewWithFS builds a Store on an already-resolved config directory and
// an explicit filesystem. Tests use this with the in-memory FS.
func NewWithFS(configDir string, fs types.FS) *Store {
	return &Store{configDir: configDir, fs: fs}
}

// ConfigDir returns the resolved configuration directory.
func (s *Store) ConfigDir() string {
	return s.configDir
}

// ProfileDir returns <ConfigDir>/profiles. The directory is not
// created here; see EnsureProfileDir.
func (s *Store) ProfileDir() string {
	return filepath.Join(s.configDir, ProfilesDirName)
}

// EnsureProfileDir creates the profile directory with parents. Only
// profile creation calls this; every other operation treats a missing
// directory as an empty store.
func (s *Store) EnsureProfileDir() error {
	if err := s.fs.MkdirAll(s.ProfileDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", s.ProfileDir())
	}
	return nil
}

// PathFor returns the file path for a profile name. Pure join, no
// existence check.
func (s *Store) PathFor(name string) string {
	return filepath.Join(s.ProfileDir(), name)
}

// ValidateName rejects names that would escape the profile directory
// or collide with hidden files.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.NewInputRequiredError("profile name")
	case strings.HasPrefix(name, "."):
		return errors.Newf(errors.ErrInvalidInput, "profile name %q must not begin with a dot", name)
	case strings.ContainsRune(name, os.PathSeparator):
		return errors.Newf(errors.ErrInvalidInput, "profile name %q must not contain a path separator", name)
	}
	return nil
}

// Exists reports whether a profile file is present.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	info, err := s.fs.Stat(s.PathFor(name))
	return err == nil && !info.IsDir()
}

// List returns profile names sorted lexicographically. Hidden files
// are excluded and subdirectories ignored. A non-empty pattern filters
// by exact match; a missing profile directory lists empty.
func (s *Store) List(pattern string) ([]string, error) {
	logger := logging.GetLogger("store")

	entries, err := s.fs.ReadDir(s.ProfileDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", s.ProfileDir())
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if pattern != "" && name != pattern {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Debug().Str("pattern", pattern).Int("count", len(names)).Msg("Listed profiles")
	return names, nil
}

// Read returns the raw contents of a profile file.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := s.fs.ReadFile(s.PathFor(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(name)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read profile %q", name)
	}
	return data, nil
}

// Write stores data as the profile file for name. The profile
// directory must already exist.
func (s *Store) Write(name string, data []byte) error {
	if err := s.fs.WriteFile(s.PathFor(name), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write profile %q", name)
	}
	return nil
}

// Delete removes a profile file. A missing profile is a NotFoundError.
func (s *Store) Delete(name string) error {
	if !s.Exists(name) {
		return errors.NewNotFoundError(name)
	}
	if err := s.fs.Remove(s.PathFor(name)); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to delete profile %q", name)
	}
	return nil
}
