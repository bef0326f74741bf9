package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-arranger/internal/harmony"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
	"github.com/Conceptual-Machines/magda-arranger/internal/voicing"
)

// HarmonyHandler serves the stateless harmonic tools with the recognition
// settings the host configured
type HarmonyHandler struct {
	recognizer theory.RecognizerConfig
}

// NewHarmonyHandler creates a harmony handler around the given recognition
// settings
func NewHarmonyHandler(recognizer theory.RecognizerConfig) *HarmonyHandler {
	return &HarmonyHandler{recognizer: recognizer}
}

// Recognize identifies the chord in a set of MIDI note numbers
func (h *HarmonyHandler) Recognize(c *gin.Context) {
	var req struct {
		Notes    []int `json:"notes" binding:"required"`
		MinNotes int   `json:"min_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	cfg := h.recognizer
	if req.MinNotes > 0 {
		cfg.MinNotes = req.MinNotes
	}

	c.JSON(http.StatusOK, theory.Recognize(req.Notes, cfg))
}

// AllocateVoicing computes a styled voicing for a recognized chord
func (h *HarmonyHandler) AllocateVoicing(c *gin.Context) {
	var req struct {
		Notes      []int  `json:"notes" binding:"required"`
		Previous   []int  `json:"previous"`
		VoiceCount int    `json:"voice_count"`
		Style      string `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	recognition := theory.Recognize(req.Notes, h.recognizer)
	if recognition.NoChord() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no chord in input notes"})
		return
	}

	voiceCount := req.VoiceCount
	if voiceCount <= 0 {
		voiceCount = 4
	}
	style := voicing.Style(req.Style)
	if style == "" {
		style = voicing.StyleClose
	}

	c.JSON(http.StatusOK, gin.H{
		"chord":   recognition.Chord,
		"pitches": voicing.Allocate(*recognition.Chord, req.Previous, voiceCount, style),
	})
}

// chordFromRequest decodes a {root, quality} payload into a chord
func chordFromRequest(c *gin.Context) (theory.Chord, bool) {
	var req struct {
		Root    int    `json:"root"`
		Quality string `json:"quality" binding:"required"`
		Bass    *int   `json:"bass"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chord: " + err.Error()})
		return theory.Chord{}, false
	}

	bass := theory.NoBass
	if req.Bass != nil {
		bass = *req.Bass
	}
	return theory.NewChord(req.Root, theory.Quality(req.Quality), bass, nil), true
}

// Substitutions returns alternative chords for a given chord
func Substitutions(c *gin.Context) {
	chord, ok := chordFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chord":         chord,
		"substitutions": harmony.Substitutions(chord),
	})
}

// Tension scores a chord's harmonic tension and optionally rewrites it
// toward a target
func Tension(c *gin.Context) {
	var req struct {
		Root    int      `json:"root"`
		Quality string   `json:"quality" binding:"required"`
		Target  *float64 `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chord: " + err.Error()})
		return
	}

	chord := theory.NewChord(req.Root, theory.Quality(req.Quality), theory.NoBass, nil)
	resp := gin.H{"chord": chord, "tension": harmony.TensionScore(chord)}

	if req.Target != nil {
		adjusted := harmony.AdjustTension(chord, *req.Target)
		resp["adjusted"] = adjusted
		resp["adjusted_tension"] = harmony.TensionScore(adjusted)
	}

	c.JSON(http.StatusOK, resp)
}

// Complexity maps a chord onto a vocabulary tier (1=triad .. 5=13th)
func Complexity(c *gin.Context) {
	var req struct {
		Root    int    `json:"root"`
		Quality string `json:"quality" binding:"required"`
		Tier    int    `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	chord := theory.NewChord(req.Root, theory.Quality(req.Quality), theory.NoBass, nil)
	c.JSON(http.StatusOK, gin.H{
		"chord": harmony.AdjustComplexity(chord, harmony.ComplexityTier(req.Tier)),
	})
}

// Colors proposes modal recolorings of a chord, optionally auto-selected
// for a prevailing key
func Colors(c *gin.Context) {
	var req struct {
		Root     int    `json:"root"`
		Quality  string `json:"quality" binding:"required"`
		KeyRoot  *int   `json:"key_root"`
		KeyMinor bool   `json:"key_minor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	chord := theory.NewChord(req.Root, theory.Quality(req.Quality), theory.NoBass, nil)
	resp := gin.H{"suggestions": harmony.SuggestColors(chord)}
	if req.KeyRoot != nil {
		resp["selected"] = harmony.SuggestColorForKey(chord, *req.KeyRoot, req.KeyMinor)
	}

	c.JSON(http.StatusOK, resp)
}
