package support

import (
	"path/filepath"

	"github.com/Nikita06122002/credstore/pkg/config"
	"github.com/Nikita06122002/credstore/pkg/logging"
)

var logger = logging.Component("support")

// LoadMergedConfig merges the process environment over the config file.
// Command-line flags (handled by kong) take precedence over both.
func LoadMergedConfig(configDir string) config.Config {
	envCfg := config.GetEnvConfig()
	fileCfg, err := config.LoadFile(filepath.Join(configDir, "config.env"))
	if err != nil {
		logger.Warnf("Failed to load config file: %v", err)
		fileCfg = make(config.Config)
	}
	return config.MergeConfigs(envCfg, fileCfg)
}
