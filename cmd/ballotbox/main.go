package main

import "github.com/zhulik/ballotbox/internal/cli"

func main() {
	cli.Run()
}
