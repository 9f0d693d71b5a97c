// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// ConfigSection is the interface of a section in the config
type ConfigSection interface {
	Name() string
	MapTo(any) error
	HasKey(key string) bool
	Key(key string) *ini.Key
	Keys() []*ini.Key
	ChildSections() []ConfigSection
}

// ConfigProvider represents a config provider
type ConfigProvider interface {
	Section(section string) ConfigSection
	HasSection(section string) bool
}

type iniConfigProvider struct {
	file *ini.File
}

type iniConfigSection struct {
	sec *ini.Section
}

var (
	_ ConfigProvider = (*iniConfigProvider)(nil)
	_ ConfigSection  = (*iniConfigSection)(nil)
)

func (s *iniConfigSection) Name() string {
	return s.sec.Name()
}

func (s *iniConfigSection) MapTo(v any) error {
	return s.sec.MapTo(v)
}

func (s *iniConfigSection) HasKey(key string) bool {
	return s.sec.HasKey(key)
}

func (s *iniConfigSection) Key(key string) *ini.Key {
	return s.sec.Key(key)
}

func (s *iniConfigSection) Keys() []*ini.Key {
	return s.sec.Keys()
}

func (s *iniConfigSection) ChildSections() (sections []ConfigSection) {
	for _, s := range s.sec.ChildSections() {
		sections = append(sections, &iniConfigSection{s})
	}
	return sections
}

func newConfigProvider(opts ini.LoadOptions, source any) (*iniConfigProvider, error) {
	cfg, err := ini.LoadSources(opts, source)
	if err != nil {
		return nil, err
	}
	return &iniConfigProvider{file: cfg}, nil
}

func loadOptions() ini.LoadOptions {
	// "#" starts a comment only at the beginning of a line, so a value may hold a color like #fff
	return ini.LoadOptions{KeyValueDelimiterOnWrite: " = ", IgnoreInlineComment: true}
}

// NewConfigProviderFromData this function is mainly for testing purpose
func NewConfigProviderFromData(configContent string) (ConfigProvider, error) {
	return newConfigProvider(loadOptions(), []byte(configContent))
}

// NewConfigProviderFromFile loads the config file, a missing file gives an empty config
func NewConfigProviderFromFile(file string) (ConfigProvider, error) {
	if file == "" {
		return newConfigProvider(loadOptions(), []byte{})
	}
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newConfigProvider(loadOptions(), []byte{})
		}
		return nil, fmt.Errorf("unable to stat config file %q: %w", file, err)
	}
	cfg, err := newConfigProvider(loadOptions(), file)
	if err != nil {
		return nil, fmt.Errorf("unable to load config file %q: %w", file, err)
	}
	return cfg, nil
}

func (p *iniConfigProvider) Section(section string) ConfigSection {
	return &iniConfigSection{sec: p.file.Section(section)}
}

func (p *iniConfigProvider) HasSection(section string) bool {
	return p.file.HasSection(section)
}
