package sheet

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/contact"
)

// ExecPath is where the contact form posts.
const ExecPath = "/sheet/exec"

// Reply is the body the endpoint answers with. The form never reads it.
const Reply = "ok"

// ErrEmptyPayload is returned for a request without a body.
var ErrEmptyPayload = errors.New("sheet: empty payload")

// DecodeRecord parses a posted submission. The content type is not checked:
// opaque browser requests arrive as text/plain.
func DecodeRecord(body []byte) (contact.Record, error) {
	var rec contact.Record
	if len(strings.TrimSpace(string(body))) == 0 {
		return rec, ErrEmptyPayload
	}
	if err := json.Unmarshal(body, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Register mounts the exec endpoint on r.
func (s *Store) Register(r gin.IRoutes) {
	r.POST(ExecPath, s.handleExec)
}

func (s *Store) handleExec(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "unreadable body")
		return
	}

	rec, err := DecodeRecord(body)
	if err != nil {
		s.log.Warn("Rejected sheet row", zap.Error(err))
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	row, err := s.Append(c.Request.Context(), rec)
	if err != nil {
		s.log.Error("Failed to append sheet row", zap.Error(err))
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	s.log.Info("Contact submission stored",
		zap.String("id", row.ID),
		zap.String("subject", rec.Subject),
	)
	c.String(http.StatusOK, Reply)
}
