package main

import (
	"encoding/binary"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 80
	maxNameLen        = 16
)

// Client represents a WebSocket connection. A client is the pilot of one
// session, a controller attached to it, or a spectator (renderer/HUD/audio
// consumer) — all three receive the same snapshots and events.
type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	id           string
	sessionID    string
	remoteAddr   string
	isController bool
	msgCount     int
	msgResetAt   time.Time
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		id:         GenerateID(4),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		// Binary input frames: 5 bytes [0x01, flags, heading_hi, heading_lo, action]
		if msgType == websocket.BinaryMessage && len(message) == 5 && message[0] == 0x01 {
			c.handleBinaryInput(message)
		} else {
			c.handleMessage(message)
		}
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// 0xFF prefix marks a binary frame from SendBinary
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client.
// Slow clients drop messages rather than stall the tick.
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes with 0xFF so WritePump can distinguish it from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage dispatches a JSON envelope from the client
func (c *Client) handleMessage(message []byte) {
	var env InEnvelope
	if err := json.Unmarshal(message, &env); err != nil {
		return
	}

	switch env.T {
	case MsgCreate:
		c.handleCreate(env.D)
	case MsgJoin:
		c.handleJoin(env.D)
	case MsgControl:
		c.handleControl(env.D)
	case MsgList:
		c.SendJSON(Envelope{T: MsgSessions, Data: c.hub.sessions.ListSessions()})
	case MsgInput:
		c.handleInput(env.D)
	case MsgAction:
		c.handleAction(env.D)
	case MsgStart:
		if g := c.pilotGame(); g != nil {
			g.StartGame()
		}
	case MsgPause:
		if g := c.pilotGame(); g != nil {
			g.Pause()
		}
	case MsgResume:
		if g := c.pilotGame(); g != nil {
			g.Resume()
		}
	}
}

func (c *Client) handleCreate(data []byte) {
	if c.sessionID != "" {
		return
	}
	var msg CreateMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	name := msg.SessionName
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	sess := c.hub.sessions.CreateSession(name, ParseMode(msg.Mode))
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session limit reached"}})
		return
	}
	c.sessionID = sess.ID
	c.hub.sessions.ClaimPilot(sess.ID, c.id)
	sess.Game.AddClient(c.id, c)
	c.SendJSON(Envelope{T: MsgCreated, Data: WelcomeMsg{
		SessionID: sess.ID,
		Mode:      sess.Game.Mode().String(),
		Pilot:     true,
	}})
}

func (c *Client) handleJoin(data []byte) {
	if c.sessionID != "" {
		return
	}
	var msg JoinMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(msg.SessionID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session not found"}})
		return
	}
	c.sessionID = sess.ID
	pilot := c.hub.sessions.ClaimPilot(sess.ID, c.id)
	sess.Game.AddClient(c.id, c)
	c.SendJSON(Envelope{T: MsgJoined, Data: WelcomeMsg{
		SessionID: sess.ID,
		Mode:      sess.Game.Mode().String(),
		Pilot:     pilot,
	}})
}

func (c *Client) handleControl(data []byte) {
	if c.sessionID != "" {
		return
	}
	var msg ControlMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(msg.SID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session not found"}})
		return
	}
	c.sessionID = sess.ID
	c.isController = true
	sess.Game.AddClient(c.id, c)
	c.SendJSON(Envelope{T: MsgControlOK})
}

// canDrive reports whether this client's input reaches the simulation
func (c *Client) canDrive() bool {
	if c.sessionID == "" {
		return false
	}
	return c.isController || c.hub.sessions.IsPilot(c.sessionID, c.id)
}

// pilotGame returns the session game if this client holds the controls
func (c *Client) pilotGame() *Game {
	if !c.canDrive() {
		return nil
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return nil
	}
	return sess.Game
}

func (c *Client) handleInput(data []byte) {
	g := c.pilotGame()
	if g == nil {
		return
	}
	var msg ClientInput
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	g.SetInput(InputState{
		RotateLeft:  msg.Left,
		RotateRight: msg.Right,
		Thrust:      msg.Thrust,
		HasHeading:  msg.HasHeading,
		Heading:     msg.Heading,
	})
}

func (c *Client) handleAction(data []byte) {
	g := c.pilotGame()
	if g == nil {
		return
	}
	var msg ActionMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	switch msg.Kind {
	case "fire":
		g.QueueAction(ActionFire)
	case "hyperspace":
		g.QueueAction(ActionHyperspace)
	}
}

// Binary input flag bits
const (
	inputFlagThrust  = 1 << 0
	inputFlagLeft    = 1 << 1
	inputFlagRight   = 1 << 2
	inputFlagHeading = 1 << 3
)

// Binary action codes (byte 4)
const (
	inputActionNone       = 0
	inputActionFire       = 1
	inputActionHyperspace = 2
)

// handleBinaryInput decodes the compact controller frame:
// [0x01, flags, heading_hi, heading_lo, action]. The heading is a uint16
// of radians*1000 offset by PI so it fits unsigned.
func (c *Client) handleBinaryInput(message []byte) {
	g := c.pilotGame()
	if g == nil {
		return
	}
	flags := message[1]
	in := InputState{
		Thrust:      flags&inputFlagThrust != 0,
		RotateLeft:  flags&inputFlagLeft != 0,
		RotateRight: flags&inputFlagRight != 0,
	}
	if flags&inputFlagHeading != 0 {
		raw := binary.BigEndian.Uint16(message[2:4])
		in.HasHeading = true
		in.Heading = float64(raw)/1000.0 - math.Pi
	}
	g.SetInput(in)

	switch message[4] {
	case inputActionFire:
		g.QueueAction(ActionFire)
	case inputActionHyperspace:
		g.QueueAction(ActionHyperspace)
	}
}
