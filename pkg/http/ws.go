package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"isharati.xyz/netdiag-service/pkg/common"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWebsocket subscribes the client to history events. Incoming messages are
// read only to notice when the client goes away.
func (rs *RestfulServer) ServeWebsocket(c *gin.Context) {
	if rs.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live feed is not enabled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	rs.Hub.Register(conn)

	go func() {
		defer rs.Hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
