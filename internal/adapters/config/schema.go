package config

// pintoFile is the YAML schema of pinto.yaml.
type pintoFile struct {
	Enabled *bool  `yaml:"enabled"`
	Timeout string `yaml:"timeout"`

	Format struct {
		OnSave  *bool `yaml:"on_save"`
		OnType  *bool `yaml:"on_type"`
		OnPaste *bool `yaml:"on_paste"`
	} `yaml:"format"`

	Watch struct {
		Debounce string `yaml:"debounce"`
	} `yaml:"watch"`

	Search struct {
		Exclude []string `yaml:"exclude"`
	} `yaml:"search"`

	Composer struct {
		Bin string `yaml:"bin"`
	} `yaml:"composer"`

	Log struct {
		JSON *bool `yaml:"json"`
	} `yaml:"log"`
}
