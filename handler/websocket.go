package handler

import (
	"cafeteria_manager/helper"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebsocketUpgrade rejects plain HTTP requests on the websocket route.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebsocketHandler authenticates the connection from a token query param,
// registers it with the hub and then just drains the read side until the
// client goes away. A bad token closes the socket without registering.
var WebsocketHandler = websocket.New(func(conn *websocket.Conn) {
	token := conn.Query("token")
	claim, err := helper.ParseTokenClaims(token)
	if err != nil {
		log.Printf("websocket auth failed: %v", err)
		conn.Close()
		return
	}

	Hub.Register(claim.UserId, claim.Role, conn)
	defer func() {
		Hub.Unregister(claim.UserId, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
})
