package main

import "github.com/devicelab-dev/highlight-gallery/pkg/cli"

func main() {
	cli.Execute()
}
