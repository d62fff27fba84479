package main

import (
	"context"
	"os"

	"noaa-wallpaper/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
