package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	MsgTypeCreateRoom  = 101
	MsgTypeJoinRoom    = 102
	MsgTypeStartGame   = 103
	MsgTypeRestartGame = 104
	MsgTypeSubmitCards = 105
	MsgTypePickWinner  = 106
	MsgTypeChat        = 107

	MsgTypeRoomCreated = 201
	MsgTypeRoomJoined  = 202
)

// send frames and sends one message to the server.
func send(c *websocket.Conn, msgID uint16, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	packet := make([]byte, 4+len(data))
	binary.BigEndian.PutUint16(packet[0:2], msgID)
	binary.BigEndian.PutUint16(packet[2:4], uint16(len(data)))
	copy(packet[4:], data)

	return c.WriteMessage(websocket.BinaryMessage, packet)
}

type roomRef struct {
	mu   sync.Mutex
	code string
}

func (r *roomRef) set(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = code
}

func (r *roomRef) get() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

func main() {
	addr := "localhost:3090"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	current := &roomRef{}
	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if len(message) < 4 {
				log.Printf("Received invalid packet of size %d", len(message))
				continue
			}
			msgID := binary.BigEndian.Uint16(message[0:2])
			data := message[4:]

			// Track the room code so later commands can omit it.
			if msgID == MsgTypeRoomCreated || msgID == MsgTypeRoomJoined {
				var ev struct {
					Code string `json:"code"`
				}
				if json.Unmarshal(data, &ev) == nil && ev.Code != "" {
					current.set(ev.Code)
				}
			}
			log.Printf("<- RECV (ID: %d): %s", msgID, string(data))
		}
	}()

	fmt.Println(`Commands:
  create <name>
  join <code> <name>
  start <winScore> | restart <winScore>
  submit <card text> [| <card text> ...]
  pick <winner id>
  chat <text>`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-done:
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, rest, _ := strings.Cut(line, " ")
		code := current.get()

		var err error
		switch verb {
		case "create":
			err = send(c, MsgTypeCreateRoom, map[string]string{"name": rest})
		case "join":
			joinCode, name, _ := strings.Cut(rest, " ")
			err = send(c, MsgTypeJoinRoom, map[string]string{"code": joinCode, "name": name})
		case "start", "restart":
			score, _ := strconv.Atoi(rest)
			msgID := uint16(MsgTypeStartGame)
			if verb == "restart" {
				msgID = MsgTypeRestartGame
			}
			err = send(c, msgID, map[string]interface{}{"code": code, "win_score": score})
		case "submit":
			cards := strings.Split(rest, "|")
			for i := range cards {
				cards[i] = strings.TrimSpace(cards[i])
			}
			err = send(c, MsgTypeSubmitCards, map[string]interface{}{"code": code, "cards": cards})
		case "pick":
			err = send(c, MsgTypePickWinner, map[string]string{"code": code, "winner_id": rest})
		case "chat":
			err = send(c, MsgTypeChat, map[string]string{"code": code, "text": rest})
		default:
			fmt.Printf("unknown command %q\n", verb)
			continue
		}
		if err != nil {
			log.Println("Write error:", err)
			return
		}
	}
}
