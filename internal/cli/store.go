package cli

import (
	"fmt"
	"time"

	"github.com/Nikita06122002/credstore/internal/support"
	"github.com/Nikita06122002/credstore/pkg/secrets"
)

const defaultService = "credstore"

// The memory backend holds nothing across processes; a shared instance at
// least keeps commands consistent within one test run.
var memoryProvider = secrets.NewMemoryProvider()

func buildAdapter(g *Globals) (*secrets.Adapter, error) {
	cfg := support.LoadMergedConfig(support.GetConfigDir(g.ConfigDir))

	service := g.Service
	if service == "" {
		service = cfg.Get("CREDSTORE_SERVICE", defaultService)
	}

	backendType := g.Backend
	if backendType == "" {
		backendType = cfg.Get("CREDSTORE_BACKEND", "system")
	}

	var p secrets.Provider
	switch backendType {
	case "system":
		p = secrets.NewSystemProvider()
	case "keyring":
		p = secrets.NewKeyringProvider()
	case "memory":
		p = memoryProvider
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backendType)
	}

	if g.Retry || cfg.Bool("CREDSTORE_RETRY") {
		p = secrets.NewRetryProvider(p, 10*time.Second)
	}

	logger.Debugf("Using backend %s with service %s", backendType, service)
	return secrets.New(service, p), nil
}
