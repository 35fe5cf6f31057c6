package transport

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"whiteboard/internal/event"
	"whiteboard/internal/handlers"
	"whiteboard/internal/middleware"
	"whiteboard/internal/room"
	"whiteboard/internal/user"
)

const pongWait = 60 * time.Second

// Handler owns the websocket endpoint: upgrade, join handshake, read loop
type Handler struct {
	upgrader      websocket.Upgrader
	ipRateLimiter *middleware.IPRateLimit
	limits        *middleware.RateLimit
	sessionMgr    *user.SessionManager
	roomManager   *room.Manager
	msgRouter     *handlers.MessageRouter
}

func NewHandler(
	allowedOrigins []string,
	ipRateLimiter *middleware.IPRateLimit,
	limits *middleware.RateLimit,
	sessionMgr *user.SessionManager,
	roomManager *room.Manager,
	msgRouter *handlers.MessageRouter,
) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			// CORS
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowedOrigins) == 0 {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
		ipRateLimiter: ipRateLimiter,
		limits:        limits,
		sessionMgr:    sessionMgr,
		roomManager:   roomManager,
		msgRouter:     msgRouter,
	}
}

// GetClientIP: extracts the client IP from the request. RemoteAddr only, it
// cannot be spoofed by the client.
func GetClientIP(r *http.Request) string {
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx] // remove port
	}
	return ip
}

// ServeWS upgrades HTTP to WebSocket and joins the requested room. The room
// code comes from the "room" query parameter; an optional "uid" parameter
// lets a reconnecting client keep its session.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)
	if !h.ipRateLimiter.Allow(clientIP) {
		logrus.WithField("ip", clientIP).Warn("Connection rate limit exceeded")
		http.Error(w, "Too many connections", http.StatusTooManyRequests)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade connection")
		return
	}
	defer conn.Close()

	roomCode := r.URL.Query().Get("room")
	if roomCode == "" {
		logrus.Warn("No room code provided")
		return
	}

	userID := r.URL.Query().Get("uid")
	if userID == "" {
		userID = user.NewID()
	}

	session := h.sessionMgr.GetOrCreate(userID)
	session.LastRoom = room.Normalize(roomCode)

	u := user.New(userID, session, conn)
	go u.WritePump()

	rm, err := h.roomManager.Join(roomCode, u)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"room":    roomCode,
			"user_id": userID,
		}).WithError(err).Warn("Failed to join room")
		u.Close()
		return
	}

	logrus.WithFields(logrus.Fields{
		"room":    rm.Code,
		"user_id": userID,
	}).Info("User joined room")

	// A disconnect is an implicit leave. Leave removes the user from the
	// room before Close shuts the outbox, so no relay can hit a closed
	// channel.
	defer func() {
		h.roomManager.Leave(u)
		u.Close()
		logrus.WithFields(logrus.Fields{
			"room":    rm.Code,
			"user_id": userID,
		}).Info("User left room")
	}()

	h.readLoop(conn, rm, u)
}

// readLoop: message loop for a websocket connection. The write side lives in
// the user's WritePump.
func (h *Handler) readLoop(conn *websocket.Conn, rm *room.Room, u *user.User) {
	conn.SetReadLimit(int64(h.limits.MaxMessageSize))
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithField("user_id", u.ID).WithError(err).Warn("Unexpected connection close")
			}
			break // connection dead
		}

		if !h.limits.ValidateMessageSize(len(msg)) {
			logrus.WithFields(logrus.Fields{
				"user_id": u.ID,
				"size":    len(msg),
			}).Warn("Message too large, dropping")
			continue
		}

		if !u.Session.RateLimiter.Allow() {
			logrus.WithField("user_id", u.ID).Warn("Rate limit exceeded, dropping message")
			continue
		}

		if err := h.msgRouter.Route(rm, u, msg); err != nil {
			if errors.Is(err, event.ErrMalformed) {
				logrus.WithField("user_id", u.ID).WithError(err).Warn("Dropping malformed event")
			} else {
				logrus.WithField("user_id", u.ID).WithError(err).Error("Failed to handle message")
			}
			continue // skip message
		}
	}
}
