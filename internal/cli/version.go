package cli

import (
	"fmt"

	"github.com/Nikita06122002/credstore/version"
)

type VersionCmd struct {
}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Printf("credstore\n")
	fmt.Printf("Version: %s\n", version.Version)
	return nil
}
