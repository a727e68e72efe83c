package cli

import "fmt"

type ExistsCmd struct {
	Key string `arg:"" help:"Credential key."`
}

func (c *ExistsCmd) Run(g *Globals) error {
	store, err := buildAdapter(g)
	if err != nil {
		return err
	}

	ok, err := store.Exists(c.Key)
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}
