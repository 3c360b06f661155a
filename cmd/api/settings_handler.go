package api

import (
	"net/http"
	"strings"
	"sync"

	"github.com/Real-Streeter/liberty-command/internal/httperr"
	rfpdomain "github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RuntimeSettings holds settings an admin can change without a restart.
type RuntimeSettings struct {
	mu       sync.RWMutex
	logLevel logrus.Level
}

func NewRuntimeSettings(level string) *RuntimeSettings {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return &RuntimeSettings{logLevel: lvl}
}

// LogLevel returns the current log level
func (s *RuntimeSettings) LogLevel() logrus.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logLevel
}

// SetLogLevel applies level to the process logger.
func (s *RuntimeSettings) SetLogLevel(level logrus.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logLevel = level
	logrus.SetLevel(level)
}

// UpdateSettingsRequest represents the request body for updating settings
type UpdateSettingsRequest struct {
	LogLevel string `json:"logLevel" binding:"required,oneof=trace debug info warn warning error"`
}

type limitsResponse struct {
	TaskContent int `json:"taskContent"`
	TaskEst     int `json:"taskEst"`
	MemberName  int `json:"memberName"`
	MemberColor int `json:"memberColor"`
	RfpName     int `json:"rfpName"`
	RfpCarrier  int `json:"rfpCarrier"`
	RfpStatus   int `json:"rfpStatus"`
	RfpNotes    int `json:"rfpNotes"`
}

// GetSettings returns the field limits and enums the client validates
// against, plus the current log level.
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"logLevel":    h.settings.LogLevel().String(),
		"priorities":  []taskdomain.Priority{taskdomain.PriorityCritical, taskdomain.PriorityStandard, taskdomain.PriorityLow},
		"rfpStatuses": []string{rfpdomain.StatusRequestSent, rfpdomain.StatusRatesPending, rfpdomain.StatusFinalizing},
		"limits": limitsResponse{
			TaskContent: taskdomain.MaxContentLength,
			TaskEst:     taskdomain.MaxEstimateLength,
			MemberName:  teamdomain.MaxNameLength,
			MemberColor: teamdomain.MaxColorLength,
			RfpName:     rfpdomain.MaxNameLength,
			RfpCarrier:  rfpdomain.MaxCarrierLength,
			RfpStatus:   rfpdomain.MaxStatusLength,
			RfpNotes:    rfpdomain.MaxNotesLength,
		},
	})
}

// UpdateSettings changes the log level at runtime
// PUT /api/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	// oneof already restricted the value
	lvl, _ := logrus.ParseLevel(req.LogLevel)
	h.settings.SetLogLevel(lvl)
	log.WithField("level", lvl.String()).Info("log level changed")

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated",
		"logLevel": lvl.String(),
	})
}
