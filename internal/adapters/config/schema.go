package config

// Cdepsfile represents the structure of the cdeps.yaml configuration file.
type Cdepsfile struct {
	Root        string   `yaml:"root"`
	IncludeDirs []string `yaml:"include_dirs"`
	Ignore      []string `yaml:"ignore"`
	Snapshot    string   `yaml:"snapshot"`
}
