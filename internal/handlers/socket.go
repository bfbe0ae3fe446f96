package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
)

var SocketServer *socketio.Server

// presenceRoom is joined by every identified connection so presence changes
// reach all clients.
const presenceRoom = "presence"

// Presence registry: userId -> socketId. A new connection for the same user
// silently replaces the previous mapping (last write wins); the stale
// transport is not closed.
var (
	onlineUsers   = make(map[string]string)
	onlineUsersMu sync.RWMutex
)

// emitOnlineUsers publishes the online-user set to every connected client.
// Kept as a variable so the publish step can be observed in tests.
var emitOnlineUsers = func(users []string) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", presenceRoom, "getOnlineUsers", users)
	}
}

// GetOnlineUsers returns the ids of all currently connected users, in
// arbitrary order.
func GetOnlineUsers() []string {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()

	users := make([]string, 0, len(onlineUsers))
	for userId := range onlineUsers {
		users = append(users, userId)
	}
	return users
}

// GetReceiverSocketID returns the socket id of the user's live connection,
// or false if the user is not connected.
func GetReceiverSocketID(userId string) (string, bool) {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()
	socketId, ok := onlineUsers[userId]
	return socketId, ok
}

// AddOnlineUser registers userId as online on the given socket and
// broadcasts the updated online-user set.
func AddOnlineUser(userId, socketId string) {
	onlineUsersMu.Lock()
	onlineUsers[userId] = socketId
	onlineUsersMu.Unlock()

	emitOnlineUsers(GetOnlineUsers())
}

// RemoveOnlineUser removes userId from the registry and broadcasts the
// updated set. Idempotent: removing an absent user still broadcasts the
// (unchanged) set, matching a double disconnect.
func RemoveOnlineUser(userId string) {
	onlineUsersMu.Lock()
	delete(onlineUsers, userId)
	onlineUsersMu.Unlock()

	emitOnlineUsers(GetOnlineUsers())
}

func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) (err error) {
		// A panic while handling the handshake must not take down the
		// gateway; treat it as a dropped connection.
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Str("panic", fmt.Sprintf("%v", r)).Msg("Panic in socket handshake")
				err = fmt.Errorf("connection failed")
			}
		}()

		u := s.URL()
		userId := u.Query().Get("userId")
		if userId == "" {
			logger.Warn().Str("socketId", s.ID()).Msg("Socket connection attempt without userId")
			return fmt.Errorf("userId required")
		}

		logger.Info().Str("socketId", s.ID()).Str("userId", userId).Msg("Socket connected")

		// Keep the identity on the connection for disconnect handling
		s.SetContext(userId)

		// Join the broadcast room before registering, so this client also
		// receives the presence snapshot produced by its own registration.
		s.Join(presenceRoom)

		AddOnlineUser(userId, s.ID())
		return nil
	})

	// Client announces it is going offline without closing the transport.
	// The transport-level disconnect may still fire afterwards; the double
	// removal is harmless.
	server.OnEvent("/", "userOffline", func(s socketio.Conn) {
		if userId, ok := s.Context().(string); ok && userId != "" {
			RemoveOnlineUser(userId)
		}
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		logger.Info().Str("socketId", s.ID()).Str("reason", reason).Msg("Socket disconnected")

		if userId, ok := s.Context().(string); ok && userId != "" {
			RemoveOnlineUser(userId)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Error().Err(e).Msg("Socket error")
	})

	go server.Serve()
	SocketServer = server
	return server
}

// SocketHandler wraps the socket.io server for Gin
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
