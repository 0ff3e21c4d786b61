package main

import (
	"flag"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/rigidsim/raycast/web/server"
	"github.com/segmentio/encoding/json"
)

func main() {
	addr := flag.String("addr", ":8080", "Listening address for ray cast queries")
	logLevel := flag.String("log-level", logs.InfoLevel.String(), "Log level (debug|info|warning|error)")
	flag.Parse()

	logs.SetLevel(logs.ParseLevel(*logLevel))
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal

	queryServer := server.NewServer(*addr)
	if err := queryServer.Start(); err != nil {
		logs.Warn(errors.New("ray query server stopped").
			WithTag("addr", *addr).
			Wrap(err))
		os.Exit(1)
	}
}
