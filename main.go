package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	clientDir := flag.String("client", "", "Path to renderer client directory (default: ../client)")
	tuningPath := flag.String("config", "", "Optional YAML tuning overrides")
	flag.Parse()

	if *clientDir == "" {
		exe, _ := os.Executable()
		*clientDir = filepath.Join(filepath.Dir(exe), "..", "client")
		// Fallback for development
		if _, err := os.Stat(*clientDir); os.IsNotExist(err) {
			*clientDir = "../client"
		}
	}

	var tuning []byte
	if *tuningPath != "" {
		data, err := os.ReadFile(*tuningPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		// Validate against the defaults before accepting
		if _, err := mergeTuning(DefaultConfig(ModeAsteroids), data); err != nil {
			log.Fatalf("parse config: %v", err)
		}
		tuning = data
	}

	hub := NewHub(tuning)
	go hub.Run()

	mux := SetupRoutes(hub, *clientDir)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		log.Printf("Serving renderer files from %s", *clientDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	hub.sessions.Close()
	server.Close()
}
