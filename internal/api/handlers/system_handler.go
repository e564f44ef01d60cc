package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

type MyIPResponse struct {
	IP     string `json:"ip"`
	Source string `json:"source"`
}

// GetMyIP returns the client's address as seen by the server. The console
// shows it next to the source_address field of audit records.
func (h *SystemHandler) GetMyIP(c *gin.Context) {
	ip := getClientIP(c.Request)

	source := "direct"
	if c.GetHeader("X-Forwarded-For") != "" {
		source = "X-Forwarded-For"
	} else if c.GetHeader("X-Real-IP") != "" {
		source = "X-Real-IP"
	}

	c.JSON(http.StatusOK, MyIPResponse{IP: ip, Source: source})
}

func getClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if ip := r.RemoteAddr; ip != "" {
		if idx := strings.LastIndex(ip, ":"); idx != -1 {
			return ip[:idx]
		}
		return ip
	}
	return "unknown"
}
