package notify

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Severity selects the toast style on the page.
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// DismissAfter is how long a toast stays on screen before it hides
// itself.
const DismissAfter = 5 * time.Second

// Toast is one transient on-screen message. Identical messages are not
// deduplicated: every call mints a new toast.
type Toast struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func New(severity Severity, message string) Toast {
	return Toast{ID: uuid.NewString(), Severity: severity, Message: message}
}

func Error(message string) Toast {
	return New(SeverityError, message)
}

func Success(message string) Toast {
	return New(SeveritySuccess, message)
}

const flashCookie = "toast"

// SetFlash stores a toast for the next page render, surviving one
// redirect.
func SetFlash(c *gin.Context, t Toast) {
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// PopFlash returns the pending toast, if any, and clears it so it shows
// exactly once.
func PopFlash(c *gin.Context) (Toast, bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return Toast{}, false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return Toast{}, false
	}
	var t Toast
	if err := json.Unmarshal(data, &t); err != nil {
		return Toast{}, false
	}
	return t, true
}
