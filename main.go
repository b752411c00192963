package main

import (
	"github.com/BobbingAlong/twitter-watch/cmd"
)

func main() {
	cmd.Execute()
}
