package main

import (
	"log"

	"fmtls/internal/config"
	"fmtls/internal/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	commonlog.Configure(1, nil)

	// The formatter command arrives with the client's initialization
	// options, so no engine is wired here.
	srv := server.NewServer(config.Static{Config: config.Default()}, nil)
	if err := srv.RunStdio(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
