package cli

import "fmt"

type DeleteCmd struct {
	Key string `arg:"" help:"Credential key."`
}

func (c *DeleteCmd) Run(g *Globals) error {
	store, err := buildAdapter(g)
	if err != nil {
		return err
	}

	// Deleting an absent key is an error; the provider status passes
	// through unchanged.
	if err := store.Delete(c.Key); err != nil {
		return err
	}
	logger.Infof("Deleted credential %s under service %s", c.Key, store.Service())
	fmt.Printf("Deleted %s\n", c.Key)
	return nil
}
