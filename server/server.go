package server

import (
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wfunc/chaoscards/broadcast"
	"github.com/wfunc/chaoscards/config"
	"github.com/wfunc/chaoscards/deck"
	"github.com/wfunc/chaoscards/logger"
	"github.com/wfunc/chaoscards/monitor"
	"github.com/wfunc/chaoscards/network"
	"github.com/wfunc/chaoscards/room"
	adminrpc "github.com/wfunc/chaoscards/rpc"
	"github.com/wfunc/chaoscards/session"
	"github.com/wfunc/chaoscards/timer"
)

// GameServer owns the transport side: it upgrades connections, maps packets to
// game intents, and hosts the scheduler, metrics, and admin RPC surfaces. All
// game state lives in the room registry.
type GameServer struct {
	cfg          *config.Config
	upgrader     websocket.Upgrader
	registry     *room.Manager
	sessions     *session.Manager
	broadcaster  *broadcast.RoomBroadcaster
	sched        *timer.Scheduler
	monitor      *monitor.Monitor
	rpcServer    *adminrpc.Server
	shutdownChan chan struct{}
}

func NewGameServer(cfg *config.Config, src *deck.Source) *GameServer {
	sched := timer.NewScheduler(250 * time.Millisecond)
	sessions := session.NewManager()
	registry := room.NewManager(src, cfg.Game, sched)

	s := &GameServer{
		cfg:          cfg,
		registry:     registry,
		sessions:     sessions,
		broadcaster:  broadcast.NewRoomBroadcaster(sessions),
		sched:        sched,
		monitor:      monitor.NewMonitor("chaoscards"),
		shutdownChan: make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	// Global round scheduler: one sweep per second across every room.
	sched.Every(time.Second, func() {
		registry.SweepDeadlines(time.Now())
	})
	sched.Every(15*time.Second, func() {
		s.monitor.SetLiveRooms(registry.Count())
	})

	rpcServer, err := adminrpc.NewServer(cfg.Server.RPCAddress)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer
	rpc.Register(adminrpc.NewAdminService(registry, sessions))

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()
	s.monitor.StartServer(s.cfg.Server.MetricsAddress)

	http.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.cfg.Server.HTTPAddress)
	return http.ListenAndServe(s.cfg.Server.HTTPAddress, nil)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.sched.Stop()
	s.rpcServer.Stop()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessions.Add(sess)
	s.monitor.IncPlayersOnline()

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.monitor.DecPlayersOnline()
		s.sessions.Remove(sess.GetID())
		if sess.RoomCode != "" {
			s.registry.Disconnect(sess.RoomCode, sess.GetID())
		}
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := wsConn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}
