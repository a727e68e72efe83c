package main

import "github.com/Nikita06122002/credstore/internal/cli"

func main() {
	cli.Main()
}
