package controller

import (
	"dojo/logger"
	"dojo/metrics"
	"dojo/repository"
	"dojo/service"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type CatalogUpdate struct {
	Version int64 `json:"version"`
	Total   int   `json:"total"`
}

// CatalogStream pushes a CatalogUpdate to every connected client whenever
// the catalog snapshot is swapped, so open technique pages can refresh.
type CatalogStream struct {
	service     *service.TechniqueService
	mu          sync.Mutex
	connections map[*websocket.Conn]*sync.Mutex
}

func NewCatalogStream(techniqueService *service.TechniqueService) *CatalogStream {
	s := &CatalogStream{
		service:     techniqueService,
		connections: make(map[*websocket.Conn]*sync.Mutex),
	}
	techniqueService.OnSwap(s.broadcast)
	return s
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

func toCatalogUpdate(s *repository.Snapshot) CatalogUpdate {
	return CatalogUpdate{Version: s.Version, Total: len(s.Techniques)}
}

// @id CatalogWebSocket
// @Description Websocket for catalog updates. Sends the current version on connect and again after every reload.
// @Tags techniques
// @Router /techniques/ws [get]
// @Success 200 {object} CatalogUpdate
func (s *CatalogStream) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	writeMu := &sync.Mutex{}
	s.mu.Lock()
	s.connections[conn] = writeMu
	metrics.StreamConnectionsGauge.Inc()
	s.mu.Unlock()

	// registered before the first write so no swap between the two is lost
	if err := s.send(conn, writeMu, toCatalogUpdate(s.service.Snapshot())); err != nil {
		s.remove(conn)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.remove(conn)
			return
		}
	}
}

func (s *CatalogStream) remove(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.connections[conn]; ok {
		delete(s.connections, conn)
		metrics.StreamConnectionsGauge.Dec()
	}
}

func (s *CatalogStream) send(conn *websocket.Conn, writeMu *sync.Mutex, update CatalogUpdate) error {
	serialized, err := json.Marshal(update)
	if err != nil {
		return err
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, serialized)
}

func (s *CatalogStream) broadcast(snapshot *repository.Snapshot) {
	update := toCatalogUpdate(snapshot)
	s.mu.Lock()
	targets := make(map[*websocket.Conn]*sync.Mutex, len(s.connections))
	for conn, writeMu := range s.connections {
		targets[conn] = writeMu
	}
	s.mu.Unlock()

	for conn, writeMu := range targets {
		if err := s.send(conn, writeMu, update); err != nil {
			logger.Default().Warn("failed to push catalog update", "error", err)
			s.remove(conn)
			conn.Close()
		}
	}
}

func (s *CatalogStream) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.connections)
}
