package cli

import (
	"fmt"

	"github.com/Nikita06122002/credstore/internal/support"
)

type UpdateCmd struct {
	Key   string `arg:"" help:"Credential key."`
	Value string `arg:"" optional:"" help:"New credential value (prompted when omitted)."`
}

func (c *UpdateCmd) Run(g *Globals) error {
	value := c.Value
	if value == "" && !g.NonInteractive {
		var err error
		value, err = support.ReadSecret(fmt.Sprintf("Enter new value for %s: ", c.Key))
		if err != nil {
			return fmt.Errorf("failed to read value: %v", err)
		}
	}

	store, err := buildAdapter(g)
	if err != nil {
		return err
	}

	// Update does not create missing entries; use set for that.
	if err := store.Update(value, c.Key); err != nil {
		return err
	}
	logger.Infof("Updated credential %s under service %s", c.Key, store.Service())
	fmt.Printf("Updated %s\n", c.Key)
	return nil
}
