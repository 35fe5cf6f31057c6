package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"whiteboard/internal/config"
	"whiteboard/internal/event"
	"whiteboard/internal/handlers"
	"whiteboard/internal/middleware"
	"whiteboard/internal/room"
	"whiteboard/internal/transport"
	"whiteboard/internal/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	cfg := config.Load()

	sessionMgr := user.NewSessionManager(cfg.MessagesPerSecond, cfg.BurstSize)
	roomManager := room.NewManager(cfg.MaxRooms, cfg.MaxRoomSize)
	validator := event.NewValidator()
	limits := middleware.NewRateLimit(cfg.MaxMessageSize, cfg.MessagesPerSecond, cfg.BurstSize)
	ipRateLimiter := middleware.NewIPRateLimit()
	msgRouter := handlers.NewMessageRouter(validator, roomManager, sessionMgr)
	wsHandler := transport.NewHandler(cfg.AllowedOrigins, ipRateLimiter, limits, sessionMgr, roomManager, msgRouter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go cleanup(ctx, sessionMgr, ipRateLimiter)

	http.Handle("/", http.FileServer(http.Dir("./frontend")))
	http.HandleFunc("/ws", wsHandler.ServeWS)

	logrus.WithField("addr", cfg.Addr).Info("WebSocket server started")
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logrus.WithError(err).Fatal("Error starting server")
	}
}

// cleanup: periodically expires stale sessions and IP limiters. Rooms need
// no sweeping; they are destroyed the moment their last member leaves.
func cleanup(ctx context.Context, sessionMgr *user.SessionManager, ipRateLimiter *middleware.IPRateLimit) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessionMgr.Cleanup()
			ipRateLimiter.Cleanup()
		}
	}
}
