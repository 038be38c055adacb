package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tuinmax/verandaplanner/pkg/camera"
	"github.com/tuinmax/verandaplanner/pkg/config"
	"github.com/tuinmax/verandaplanner/pkg/pricing"
	"github.com/tuinmax/verandaplanner/pkg/scene"
)

// frameInterval paces the pose stream at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dev server serves the renderer from another port.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsInput is one client input event.
type wsInput struct {
	Type     string      `json:"type"` // drag, dragend, wheel, pinch, pinchend, jump
	DX       float32     `json:"dx"`
	DY       float32     `json:"dy"`
	Viewport float32     `json:"viewport"`
	Delta    float32     `json:"delta"`
	Distance float32     `json:"distance"`
	Side     config.Side `json:"side"`
}

// wsFrame is one server-to-client message.
type wsFrame struct {
	Type   string                `json:"type"` // pose, update
	Pose   *camera.Pose          `json:"pose,omitempty"`
	Scene  scene.TargetStates    `json:"scene,omitempty"`
	Price  *pricing.Quote        `json:"price,omitempty"`
	Config *config.Configuration `json:"config,omitempty"`
}

// session is one websocket client with its own camera. The camera is
// per-session: two browsers orbit independently around the same shared
// configuration.
type session struct {
	conn *websocket.Conn

	camMu sync.Mutex
	cam   *camera.Controller

	updates chan config.Configuration
	done    chan struct{}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	sess := &session{
		conn:    conn,
		cam:     camera.NewController(),
		updates: make(chan config.Configuration, 1),
		done:    make(chan struct{}),
	}

	s.sessionsMu.Lock()
	s.sessions[sess] = struct{}{}
	s.sessionsMu.Unlock()

	s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("websocket session opened")

	// Initial full update so the client renders before touching anything.
	sess.notify(s.current())

	go s.readPump(sess)
	s.writePump(sess)

	s.sessionsMu.Lock()
	delete(s.sessions, sess)
	s.sessionsMu.Unlock()
	conn.Close()
	s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("websocket session closed")
}

// readPump decodes client input events onto the session camera. It
// owns the connection's read side; a read error ends the session.
func (s *Server) readPump(sess *session) {
	defer close(sess.done)
	for {
		var in wsInput
		if err := sess.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		sess.camMu.Lock()
		switch in.Type {
		case "drag":
			sess.cam.Drag(in.DX, in.DY, in.Viewport)
		case "dragend":
			sess.cam.DragEnd()
		case "wheel":
			sess.cam.Wheel(in.Delta)
		case "pinch":
			sess.cam.Pinch(in.Distance)
		case "pinchend":
			sess.cam.PinchEnd()
		case "jump":
			sess.cam.JumpTo(in.Side, time.Now())
		default:
			s.log.Debug().Str("type", in.Type).Msg("unknown websocket input ignored")
		}
		sess.camMu.Unlock()
	}
}

// writePump owns the connection's write side: a pose frame per tick,
// plus a full scene and price update whenever the configuration changes.
func (s *Server) writePump(sess *session) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sess.done:
			return

		case <-ticker.C:
			sess.camMu.Lock()
			pose := sess.cam.Step(time.Now())
			sess.camMu.Unlock()

			if err := sess.conn.WriteJSON(wsFrame{Type: "pose", Pose: &pose}); err != nil {
				return
			}

		case cfg := <-sess.updates:
			states := scene.Resolve(cfg, s.tree.Index())
			quote := pricing.Price(cfg)
			frame := wsFrame{Type: "update", Scene: states, Price: &quote, Config: &cfg}
			if err := sess.conn.WriteJSON(frame); err != nil {
				return
			}
		}
	}
}

// notify queues a configuration update, keeping only the newest when
// the session is behind.
func (sess *session) notify(cfg config.Configuration) {
	for {
		select {
		case sess.updates <- cfg:
			return
		default:
			select {
			case <-sess.updates:
			default:
			}
		}
	}
}

// jump starts the session camera's eased move to a side viewpoint.
func (sess *session) jump(side config.Side) {
	sess.camMu.Lock()
	sess.cam.JumpTo(side, time.Now())
	sess.camMu.Unlock()
}
