package server

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/wfunc/chaoscards/logger"
	"github.com/wfunc/chaoscards/models"
	"github.com/wfunc/chaoscards/network"
	"github.com/wfunc/chaoscards/room"
	"github.com/wfunc/chaoscards/session"
)

func (s *GameServer) handlePacket(sess *session.Session, packet *network.Packet) {
	start := time.Now()
	s.monitor.IncPacketsHandled()

	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.Touch()
	case network.MsgTypeCreateRoom:
		s.handleCreateRoom(sess, packet)
	case network.MsgTypeJoinRoom:
		s.handleJoinRoom(sess, packet)
	case network.MsgTypeStartGame:
		s.handleStartGame(sess, packet, false)
	case network.MsgTypeRestartGame:
		s.handleStartGame(sess, packet, true)
	case network.MsgTypeSubmitCards:
		s.handleSubmitCards(sess, packet)
	case network.MsgTypePickWinner:
		s.handlePickWinner(sess, packet)
	case network.MsgTypeChat:
		s.handleChat(sess, packet)
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
	}

	s.monitor.ObserveHandleLatency(time.Since(start))
}

func (s *GameServer) handleCreateRoom(sess *session.Session, packet *network.Packet) {
	var req models.CreateRoomRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	if sess.RoomCode != "" {
		return
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = "Host"
	}

	rm := s.registry.CreateRoom(s.broadcaster)
	sess.RoomCode = rm.Code
	s.sendEvent(sess, network.MsgTypeRoomCreated, models.RoomCreated{Code: rm.Code})
	if err := rm.Join(sess.GetID(), name); err != nil {
		// Cannot happen on a fresh room, but never leave an orphan behind.
		sess.RoomCode = ""
		s.registry.RemoveRoom(rm.Code)
		s.sendError(sess, err)
		return
	}
	logger.Log.Infof("Session %s created room %s", sess.GetID(), rm.Code)
}

func (s *GameServer) handleJoinRoom(sess *session.Session, packet *network.Packet) {
	var req models.JoinRoomRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}

	rm, err := s.registry.GetRoom(req.Code)
	if err != nil {
		s.sendError(sess, err)
		return
	}
	if sess.RoomCode == rm.Code {
		s.sendEvent(sess, network.MsgTypeRoomJoined, models.RoomJoined{Code: rm.Code})
		return
	}
	if sess.RoomCode != "" {
		return
	}

	if err := rm.Join(sess.GetID(), req.Name); err != nil {
		s.sendError(sess, err)
		return
	}
	sess.RoomCode = rm.Code
	s.sendEvent(sess, network.MsgTypeRoomJoined, models.RoomJoined{Code: rm.Code})
	logger.Log.Infof("Session %s joined room %s", sess.GetID(), rm.Code)
}

func (s *GameServer) handleStartGame(sess *session.Session, packet *network.Packet, restart bool) {
	var req models.StartGameRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}

	rm, err := s.registry.GetRoom(req.Code)
	if err != nil {
		s.sendError(sess, err)
		return
	}

	if restart {
		err = rm.Restart(sess.GetID(), req.WinScore)
	} else {
		err = rm.Start(sess.GetID(), req.WinScore)
	}
	s.reportError(sess, err)
}

func (s *GameServer) handleSubmitCards(sess *session.Session, packet *network.Packet) {
	var req models.SubmitCardsRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}

	rm, err := s.registry.GetRoom(req.Code)
	if err != nil {
		s.sendError(sess, err)
		return
	}
	s.reportError(sess, rm.Submit(sess.GetID(), req.Cards))
}

func (s *GameServer) handlePickWinner(sess *session.Session, packet *network.Packet) {
	var req models.PickWinnerRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}

	rm, err := s.registry.GetRoom(req.Code)
	if err != nil {
		s.sendError(sess, err)
		return
	}
	if err := rm.PickWinner(sess.GetID(), req.WinnerID); err != nil {
		s.reportError(sess, err)
		return
	}
	s.monitor.IncRoundsJudged()
}

func (s *GameServer) handleChat(sess *session.Session, packet *network.Packet) {
	var req models.ChatRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}

	rm, err := s.registry.GetRoom(req.Code)
	if err != nil {
		return
	}
	s.reportError(sess, rm.Chat(sess.GetID(), req.Text))
}

// reportError applies the surfacing policy: stale-phase intents are dropped
// silently, everything else goes back to the requester only.
func (s *GameServer) reportError(sess *session.Session, err error) {
	if err == nil || errors.Is(err, room.ErrIllegalPhase) {
		return
	}
	s.sendError(sess, err)
}

func (s *GameServer) sendError(sess *session.Session, err error) {
	s.sendEvent(sess, network.MsgTypeError, models.ErrorEvent{Message: err.Error()})
}

func (s *GameServer) sendEvent(sess *session.Session, msgID uint16, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorf("Failed to marshal event %d: %v", msgID, err)
		return
	}
	if err := sess.Send(msgID, data); err != nil {
		logger.Log.Infof("Failed to send event %d to session %s: %v", msgID, sess.GetID(), err)
	}
}
