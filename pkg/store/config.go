package store

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves the paths the store reads and writes.
type Config interface {
	// BasePath is the global directory (index, logs).
	BasePath() string
	// DirName is the per-repo directory holding the backlog file.
	DirName() string
	// FileName is the backlog file name inside DirName.
	FileName() string
}

// LoadConfig reads an optional .backlog config file and BACKLOG_* env vars.
// Missing config is not an error; defaults apply.
func LoadConfig() (Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("basepath", filepath.Join(home, ".backlog"))
	v.SetDefault("dirname", ".todo")
	v.SetDefault("filename", "backlog.json")
	v.SetConfigName(".backlog") // .yaml is implicit
	v.SetEnvPrefix("BACKLOG")
	v.AutomaticEnv()

	if override := os.Getenv("BACKLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	base, err := homedir.Expand(v.GetString("basepath"))
	if err != nil {
		base = v.GetString("basepath")
	}

	return &fileConfig{
		Base: base,
		Dir:  v.GetString("dirname"),
		File: v.GetString("filename"),
	}, nil
}

type fileConfig struct {
	Base string `json:"basepath"`
	Dir  string `json:"dirname"`
	File string `json:"filename"`
}

func (f *fileConfig) BasePath() string { return f.Base }
func (f *fileConfig) DirName() string  { return f.Dir }
func (f *fileConfig) FileName() string { return f.File }
