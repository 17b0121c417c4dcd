package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	clientDir := flag.String("client", "../client", "Path to client directory")
	dbPath := flag.String("db", "", "Path to stats database (empty: stats disabled)")
	publicURL := flag.String("url", "", "Public game URL for the /qr share code")
	flag.Parse()

	var stats *Analytics
	if *dbPath != "" {
		db, err := OpenDB(*dbPath)
		if err != nil {
			log.Fatalf("open stats db: %v", err)
		}
		defer db.Close()
		stats = NewAnalytics(db)
		defer stats.Stop()
	}

	game := NewGame(stats)
	go game.Run()

	hub := NewHub(game)
	go hub.Run()

	mux := SetupRoutes(hub, *clientDir, *publicURL)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		log.Printf("Serving client files from %s", *clientDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	game.Stop()
	server.Close()
}
