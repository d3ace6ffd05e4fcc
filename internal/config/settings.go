package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/keshon/tvc/internal/fs"
)

const (
	coreSection    = "core"
	remotesSection = "remotes"
	remotePrefix   = `remote "`
)

// Settings is the ini file stored at .tvc/config.
//
//	[core]
//	hash          = sha2-256
//	defaultBranch = master
//
//	[remote "origin"]
//	path = ../other/.tvc
//
//	[remotes]
//	pulled = false
type Settings struct {
	fs   fs.FS
	path string
	file *ini.File
}

// LoadSettings reads the settings file at path. A missing file yields
// empty settings that fall back to the defaults.
func LoadSettings(fsys fs.FS, path string) (*Settings, error) {
	s := &Settings{fs: fsys, path: path}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if !fsys.IsNotExist(err) {
			return nil, fmt.Errorf("read settings %q: %w", path, err)
		}
		s.file = ini.Empty()
		return s, nil
	}

	s.file, err = ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse settings %q: %w", path, err)
	}
	return s, nil
}

// Save writes the settings back atomically.
func (s *Settings) Save() error {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := fs.WriteFileAtomic(s.fs, s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", s.path, err)
	}
	return nil
}

// Hash returns the multihash function name used for object ids.
func (s *Settings) Hash() string {
	return s.file.Section(coreSection).Key("hash").MustString(DefaultHash)
}

func (s *Settings) SetHash(name string) {
	s.file.Section(coreSection).Key("hash").SetValue(name)
}

func (s *Settings) DefaultBranch() string {
	return s.file.Section(coreSection).Key("defaultBranch").MustString(DefaultBranch)
}

func (s *Settings) SetDefaultBranch(name string) {
	s.file.Section(coreSection).Key("defaultBranch").SetValue(name)
}

func remoteSection(name string) string {
	return remotePrefix + name + `"`
}

// Remote returns the recorded directory of the named remote.
func (s *Settings) Remote(name string) (string, bool) {
	sec, err := s.file.GetSection(remoteSection(name))
	if err != nil {
		return "", false
	}
	return sec.Key("path").String(), true
}

// AddRemote records a remote. It reports false if the name is taken.
func (s *Settings) AddRemote(name, path string) bool {
	if s.file.HasSection(remoteSection(name)) {
		return false
	}
	s.file.Section(remoteSection(name)).Key("path").SetValue(path)
	return true
}

// RemoveRemote deletes a remote. It reports false if the name is unknown.
func (s *Settings) RemoveRemote(name string) bool {
	if !s.file.HasSection(remoteSection(name)) {
		return false
	}
	s.file.DeleteSection(remoteSection(name))
	return true
}

// Remotes lists remote names in order.
func (s *Settings) Remotes() []string {
	var names []string
	for _, sec := range s.file.Sections() {
		n := sec.Name()
		if strings.HasPrefix(n, remotePrefix) && strings.HasSuffix(n, `"`) {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(n, remotePrefix), `"`))
		}
	}
	sort.Strings(names)
	return names
}

// Pulled reports the pull gate: whether a pull happened since the last
// remote was added.
func (s *Settings) Pulled() bool {
	return s.file.Section(remotesSection).Key("pulled").MustBool(false)
}

func (s *Settings) SetPulled(v bool) {
	s.file.Section(remotesSection).Key("pulled").SetValue(fmt.Sprint(v))
}
