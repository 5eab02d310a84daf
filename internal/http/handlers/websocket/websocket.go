package websocket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/bragboard/bragboard-service/internal/utils/jwt"
	"github.com/bragboard/bragboard-service/internal/utils/response"
	wsClient "github.com/bragboard/bragboard-service/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should check the origin properly
		return true
	},
}

// WebSocketHandler upgrades the connection and registers the user for
// real-time notifications. Browsers cannot set headers on WebSocket
// connections, so the access token arrives as a query parameter.
func WebSocketHandler(hub *wsClient.Hub, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			slog.Warn("websocket connection attempted without token")
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("token required")))
			return
		}

		userID, err := jwt.ExtractUserIDFromToken(token, jwtSecret)
		if err != nil {
			slog.Warn("websocket connection attempted with invalid token", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid token")))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("failed to upgrade websocket connection", slog.String("error", err.Error()))
			return
		}

		client := wsClient.NewClient(conn, userID, hub)
		hub.RegisterClient(client)
		client.Start()

		slog.Info("websocket connection established", slog.String("user_id", userID))
	}
}
