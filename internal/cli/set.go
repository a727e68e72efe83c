package cli

import (
	"fmt"

	"github.com/Nikita06122002/credstore/internal/support"
)

type SetCmd struct {
	Key   string `arg:"" help:"Credential key."`
	Value string `arg:"" optional:"" help:"Credential value (prompted when omitted, so it stays out of shell history)."`
}

func (c *SetCmd) Run(g *Globals) error {
	value := c.Value
	if value == "" && !g.NonInteractive {
		var err error
		value, err = support.ReadSecret(fmt.Sprintf("Enter value for %s: ", c.Key))
		if err != nil {
			return fmt.Errorf("failed to read value: %v", err)
		}
	}

	store, err := buildAdapter(g)
	if err != nil {
		return err
	}

	if err := store.Save(value, c.Key); err != nil {
		return err
	}
	logger.Infof("Stored credential %s under service %s", c.Key, store.Service())
	fmt.Printf("Stored %s\n", c.Key)
	return nil
}
