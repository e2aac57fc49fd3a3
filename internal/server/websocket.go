package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
	minilog "github.com/msto63/minipy/pkg/core/log"
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHandler handles WebSocket connections for live compile checks
type WebSocketHandler struct {
	logger   *minilog.Logger
	maxInput int
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(maxInput int) *WebSocketHandler {
	return &WebSocketHandler{
		logger:   minilog.GetDefault().WithField("component", "minipy-websocket"),
		maxInput: maxInput,
	}
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "compile", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSCompilePayload represents the compile message payload
type WSCompilePayload struct {
	Code       string `json:"code"`
	IncludeAST bool   `json:"include_ast,omitempty"`
}

// WSResponse represents a WebSocket response
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection handles a single WebSocket connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	h.logger.Info("WebSocket connection established", minilog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	// Cap frame size at the transport so oversized code is rejected
	// before it is buffered. The envelope needs headroom beyond the
	// source itself.
	if h.maxInput > 0 {
		conn.SetReadLimit(int64(h.maxInput) + 4096)
	}

	// Set read deadline for ping/pong
	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	// Read messages in a loop
	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.ErrorWithErr("WebSocket read error", err)
			} else {
				h.logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong", Payload: nil})

		case "compile":
			var payload WSCompilePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid compile payload")
				continue
			}
			h.handleCompileMessage(conn, payload)

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// handleCompileMessage runs the pipeline and sends the result back
func (h *WebSocketHandler) handleCompileMessage(conn *websocket.Conn, payload WSCompilePayload) {
	if h.maxInput > 0 && len(payload.Code) > h.maxInput {
		h.sendError(conn, "input_too_large", "Source exceeds maximum input length")
		return
	}

	result := minicompiler.Compile(payload.Code)

	resp := CompileResponse{
		Valid:          result.Valid(),
		SyntaxErrors:   result.SyntaxErrors,
		SemanticErrors: result.SemanticErrors,
	}
	if resp.SyntaxErrors == nil {
		resp.SyntaxErrors = []string{}
	}
	if resp.SemanticErrors == nil {
		resp.SemanticErrors = []string{}
	}
	if payload.IncludeAST && result.AST != nil {
		resp.AST = result.DumpAST()
	}

	h.sendResponse(conn, WSResponse{Type: "result", Payload: resp})
}

// sendResponse sends a response message via WebSocket
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.ErrorWithErr("WebSocket send error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
