package gen

import (
	"github.com/BurntSushi/toml"
	"github.com/dogmatiq/wirekit/internal/errorx"
	"github.com/spf13/afero"
)

// A Config is a generator manifest, typically loaded from a TOML file that
// is checked in next to the schema it generates from.
type Config struct {
	// DescriptorSet is the path of the serialized (optionally gzipped)
	// FileDescriptorSet to generate from.
	DescriptorSet string `toml:"descriptor_set"`

	// OutputDir is the directory generated units are written to.
	OutputDir string `toml:"output_dir"`

	// PackageName is the Go package name declared by every generated unit.
	PackageName string `toml:"package_name"`

	// Packages restricts generation to types declared in these schema
	// packages.
	Packages []string `toml:"packages"`

	// Types restricts generation to these named types. It takes precedence
	// over Packages.
	Types []string `toml:"types"`
}

// LoadConfig reads a generator manifest from the named TOML file.
func LoadConfig(fs afero.Fs, name string) (_ Config, err error) {
	defer errorx.Wrap(&err, "unable to load manifest from %s", name)

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return Config{}, err
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Options maps the manifest's non-empty fields to generator options.
func (c Config) Options() []Option {
	var opts []Option

	if c.OutputDir != "" {
		opts = append(opts, WithOutputDir(c.OutputDir))
	}
	if c.PackageName != "" {
		opts = append(opts, WithPackageName(c.PackageName))
	}
	if len(c.Packages) != 0 {
		opts = append(opts, WithPackages(c.Packages...))
	}
	if len(c.Types) != 0 {
		opts = append(opts, WithTypes(c.Types...))
	}

	return opts
}
