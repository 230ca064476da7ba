package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	database.StartMonitor(time.Minute)
	if cfg.WSAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.WSAddr).Serve())
		})
	}
	server := network.NewTcpServer(cfg.TCPAddr)
	log.Error(server.Serve())
}
