package main

import (
	_ "github.com/lib/pq"

	"github.com/scriptlens/scriptlens/internal/server"
	"github.com/scriptlens/scriptlens/internal/util"
	"github.com/scriptlens/scriptlens/pkg/logger"
	"github.com/scriptlens/scriptlens/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Prefix: "server",
		Debug:  debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
