package main

import "ratio-bot/src/handler/cli"

func main() {
	cli.Run()
}
