package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Conceptual-Machines/magda-arranger/internal/arranger"
	"github.com/Conceptual-Machines/magda-arranger/internal/logger"
	"github.com/Conceptual-Machines/magda-arranger/internal/styles"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

// SessionHandler owns the in-memory session registry. Each session wraps
// one arranger controller seeded with the host's recognition settings;
// sessions die with the process.
type SessionHandler struct {
	mu         sync.RWMutex
	sessions   map[string]*arranger.Controller
	recognizer theory.RecognizerConfig
}

// NewSessionHandler creates an empty session registry
func NewSessionHandler(recognizer theory.RecognizerConfig) *SessionHandler {
	return &SessionHandler{
		sessions:   map[string]*arranger.Controller{},
		recognizer: recognizer,
	}
}

func (h *SessionHandler) lookup(id string) (*arranger.Controller, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ctrl, ok := h.sessions[id]
	return ctrl, ok
}

// CreateSession starts a new arranger session and returns its id and
// initial state
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id := uuid.New().String()
	ctrl := arranger.NewControllerWithRecognizer(h.recognizer)

	h.mu.Lock()
	h.sessions[id] = ctrl
	h.mu.Unlock()

	logger.Info("Session created", logger.Fields{
		"request_id": c.GetString("request_id"),
		"session_id": id,
	})

	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"state":      ctrl.Snapshot(),
	})
}

// DeleteSession removes a session
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + id})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetState returns the session's current state snapshot
func (h *SessionHandler) GetState(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": ctrl.Snapshot()})
}

// DispatchCommand applies one arranger command to the session. The reducer
// treats an unknown style id as a silent no-op; this layer checks the
// table first so the client gets a 404 instead of silence.
func (h *SessionHandler) DispatchCommand(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}

	var cmd arranger.Command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid command: " + err.Error()})
		return
	}

	if cmd.Type == arranger.CmdLoadStyle {
		if _, found := styles.Lookup(cmd.StyleID); !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown style: " + cmd.StyleID})
			return
		}
	}

	state := ctrl.Dispatch(cmd)

	logger.Debug("Command dispatched", logger.Fields{
		"request_id": c.GetString("request_id"),
		"session_id": c.Param("id"),
		"command":    string(cmd.Type),
	})

	c.JSON(http.StatusOK, gin.H{"state": state})
}

// GetVoicing returns the session's current voicings: per style voice and
// the four-part SATB assignment
func (h *SessionHandler) GetVoicing(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}

	state := ctrl.Snapshot()
	voices := gin.H{}
	if style, found := styles.Lookup(state.StyleID); found {
		for _, voice := range style.Voices {
			voices[voice.ID] = ctrl.Voicing(voice.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"voices":    voices,
		"four_part": ctrl.FourPartVoicing(),
	})
}

// RenderParts emits the current voicing as renderer note events
func (h *SessionHandler) RenderParts(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}

	var req struct {
		LengthBeats float64 `json:"length_beats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.LengthBeats <= 0 {
		req.LengthBeats = 4
	}

	c.JSON(http.StatusOK, gin.H{"parts": ctrl.RenderParts(req.LengthBeats)})
}

// SyncFromDAW pushes host transport data (tempo, position in beats) into
// the session, converting beats to ticks at the fixed resolution.
func (h *SessionHandler) SyncFromDAW(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}

	var req struct {
		Tempo         float64 `json:"tempo"`
		PositionBeats float64 `json:"position_beats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sync payload: " + err.Error()})
		return
	}

	state := ctrl.Dispatch(arranger.SyncFromDAW(req.Tempo, arranger.BeatsToTicks(req.PositionBeats)))
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// AckSectionFlags clears the one-shot fill/ending flags after the pattern
// engine consumed them
func (h *SessionHandler) AckSectionFlags(c *gin.Context) {
	ctrl, ok := h.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": ctrl.ClearQueuedFlags()})
}
