package main

import (
	"github.com/XAN44/create-next-elysia/cli"
	"github.com/XAN44/create-next-elysia/logger"
)

func main() {
	logger.Init()
	cli.Execute()
}
