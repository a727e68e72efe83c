package support

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	DefaultConfigDirLinux = ".config/credstore"
	SystemConfigDirLinux  = "/etc/credstore"
)

func GetConfigDir(custom string) string {
	if custom != "" {
		return custom
	}
	return GetDefaultConfigDir()
}

func GetDefaultConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "credstore")
	}
	if os.Getuid() == 0 {
		return SystemConfigDirLinux
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDirLinux)
}
