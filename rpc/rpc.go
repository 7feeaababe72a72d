package rpc

import (
	"net"
	"net/rpc"

	"github.com/wfunc/chaoscards/logger"
	"github.com/wfunc/chaoscards/room"
	"github.com/wfunc/chaoscards/session"
)

// Server manages the admin RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// AdminService exposes live operational state over net/rpc.
type AdminService struct {
	registry *room.Manager
	sessions *session.Manager
}

func NewAdminService(registry *room.Manager, sessions *session.Manager) *AdminService {
	return &AdminService{registry: registry, sessions: sessions}
}

type RoomInfo struct {
	Code    string
	Phase   string
	Round   int
	Players int
}

type ListRoomsArgs struct{}

type ListRoomsReply struct {
	Rooms    []RoomInfo
	Sessions int
}

// ListRooms reports every live room plus the connected-session count.
func (a *AdminService) ListRooms(args *ListRoomsArgs, reply *ListRoomsReply) error {
	for _, r := range a.registry.Rooms() {
		reply.Rooms = append(reply.Rooms, RoomInfo{
			Code:    r.Code,
			Phase:   string(r.Phase()),
			Round:   r.Round(),
			Players: r.PlayerCount(),
		})
	}
	reply.Sessions = a.sessions.Count()
	return nil
}
