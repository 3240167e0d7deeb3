package main

import (
	"github.com/kejahub/keja-match/cmd/kejactl/cmd"
)

func main() {
	cmd.Execute()
}
