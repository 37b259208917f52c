package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"hxforge/calculator"
	"hxforge/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	cfgPath := flag.String("config", "conf/config.ini", "path of the ini config file")
	flag.Parse()

	cfg, err := calculator.LoadConfig(*cfgPath)
	if err != nil {
		log.WithError(err).Warn("config not loaded, using defaults")
	}
	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg, upgrader)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
