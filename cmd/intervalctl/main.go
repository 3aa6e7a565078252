package main

import "github.com/henderiw/intervalset/cmd/intervalctl/cmd"

func main() {
	cmd.Execute()
}
