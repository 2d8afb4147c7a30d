package config

import "flag"

type Flags struct {
	ConfigPath string
	Params     string
}

func BindFlags(fs *flag.FlagSet) *Flags {
	const usage = "config file path"
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", usage)
	fs.StringVar(&f.ConfigPath, "c", "", usage+" (shorthand)")
	fs.StringVar(&f.Params, "params", "",
		`board params, e.g. "width=9&height=9&probability=0.1&seed=42"`)
	return f
}

// Load reads the config file and lets -params win over both the file and
// MINES_PARAMS.
func (f *Flags) Load() (*Config, error) {
	config, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Params != "" {
		config.Params = f.Params
	}
	return config, nil
}
