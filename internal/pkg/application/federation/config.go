package federation

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v2"
)

// MergeStrategy decides how the results of several sources of the same kind are combined
type MergeStrategy string

const (
	// MergeFirst only consults the first configured source
	MergeFirst MergeStrategy = "first"
	// MergeConcat consults every source and keeps every row in source order
	MergeConcat MergeStrategy = "concat"
	// MergeUnion consults every source and keeps the first row seen for each key
	MergeUnion MergeStrategy = "union"
)

func (s MergeStrategy) valid() bool {
	return s == MergeFirst || s == MergeConcat || s == MergeUnion
}

type MergeStrategies struct {
	People     MergeStrategy `yaml:"people"`
	Authors    MergeStrategy `yaml:"authors"`
	Objects    MergeStrategy `yaml:"objects"`
	Activities MergeStrategy `yaml:"activities"`
}

func DefaultMergeStrategies() MergeStrategies {
	return MergeStrategies{
		People:     MergeUnion,
		Authors:    MergeConcat,
		Objects:    MergeFirst,
		Activities: MergeFirst,
	}
}

func (ms MergeStrategies) withDefaults() MergeStrategies {
	defaults := DefaultMergeStrategies()

	if ms.People == "" {
		ms.People = defaults.People
	}
	if ms.Authors == "" {
		ms.Authors = defaults.Authors
	}
	if ms.Objects == "" {
		ms.Objects = defaults.Objects
	}
	if ms.Activities == "" {
		ms.Activities = defaults.Activities
	}

	return ms
}

func (ms MergeStrategies) validate() error {
	families := map[string]MergeStrategy{
		"people":     ms.People,
		"authors":    ms.Authors,
		"objects":    ms.Objects,
		"activities": ms.Activities,
	}

	for family, strategy := range families {
		if !strategy.valid() {
			return fmt.Errorf("invalid merge strategy %q for %s", strategy, family)
		}
	}

	return nil
}

type MetadataSourceConfig struct {
	ID           string `yaml:"id"`
	Endpoint     string `yaml:"endpoint"`
	DefaultGraph string `yaml:"defaultGraph"`
	Debug        bool   `yaml:"debug"`
}

type ProcessSourceConfig struct {
	ID     string `yaml:"id"`
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Config struct {
	MetadataSources []MetadataSourceConfig `yaml:"metadataSources"`
	ProcessSources  []ProcessSourceConfig  `yaml:"processSources"`
	MergeStrategies MergeStrategies        `yaml:"mergeStrategies"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	for idx := range cfg.MetadataSources {
		if cfg.MetadataSources[idx].ID == "" {
			cfg.MetadataSources[idx].ID = uuid.NewString()
		}
	}

	for idx := range cfg.ProcessSources {
		if cfg.ProcessSources[idx].ID == "" {
			cfg.ProcessSources[idx].ID = uuid.NewString()
		}
		if cfg.ProcessSources[idx].Driver == "" {
			cfg.ProcessSources[idx].Driver = "sqlite3"
		}
	}

	cfg.MergeStrategies = cfg.MergeStrategies.withDefaults()

	return cfg, cfg.MergeStrategies.validate()
}
