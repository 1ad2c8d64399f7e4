package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/mistakeknot/taskdesk/internal/taskstore"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	seed := flag.String("seed", "", "yaml seed file with users and tasks")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := taskstore.NewStore()
	if *seed != "" {
		if err := taskstore.LoadSeed(store, *seed); err != nil {
			log.Error("seed load failed", "err", err)
			os.Exit(1)
		}
		log.Info("seed loaded", "path", *seed)
	}

	srv := taskstore.NewServer(store, log)
	log.Info("task store listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
