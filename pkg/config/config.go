package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/Nikita06122002/credstore/pkg/logging"
)

var logger = logging.Component("pkg/config")

// EnvPrefix selects which environment variables belong to credstore.
const EnvPrefix = "CREDSTORE_"

type Config map[string]string

// Parse reads KEY=VALUE lines; blank lines and # comments are skipped,
// lines without = are ignored.
func Parse(r io.Reader) (Config, error) {
	config := make(Config)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		config[key] = value
	}
	return config, scanner.Err()
}

func LoadFile(path string) (Config, error) {
	logger.Debugf("Loading config from %s", path)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Config), nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func (c Config) Merge(other Config) {
	for k, v := range other {
		c[k] = v
	}
}

func (c Config) Get(key string, defaultValue string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return defaultValue
}

// Bool interprets a config value as a flag; only "true" and "1" enable it.
func (c Config) Bool(key string) bool {
	v := c.Get(key, "")
	return v == "true" || v == "1"
}

// MergeConfigs combines configs with earlier arguments taking priority.
func MergeConfigs(priority ...Config) Config {
	res := make(Config)
	for i := len(priority) - 1; i >= 0; i-- {
		res.Merge(priority[i])
	}
	return res
}

func GetEnvConfig() Config {
	res := make(Config)
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix) {
			parts := strings.SplitN(env, "=", 2)
			res[parts[0]] = parts[1]
		}
	}
	return res
}
