package cli

import "fmt"

type GetCmd struct {
	Key string `arg:"" help:"Credential key."`
}

func (c *GetCmd) Run(g *Globals) error {
	store, err := buildAdapter(g)
	if err != nil {
		return err
	}

	value, ok, err := store.Get(c.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no credential stored under %s", c.Key)
	}
	fmt.Println(value)
	return nil
}
