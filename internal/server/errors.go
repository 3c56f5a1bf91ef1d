package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrickprogramme/webscribe/internal/export"
	"github.com/patrickprogramme/webscribe/internal/transcript"
	"github.com/patrickprogramme/webscribe/internal/yt"
)

// statusFor traduit les erreurs métier en codes HTTP : toute erreur de la
// taxonomie connue donne un 400, tout le reste un 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, yt.ErrInvalidURL),
		errors.Is(err, yt.ErrUnavailable),
		errors.Is(err, yt.ErrNoTranscript),
		errors.Is(err, yt.ErrUnknownLanguage),
		errors.Is(err, yt.ErrTooManyRequests),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, transcript.ErrInvalidStartFormat),
		errors.Is(err, transcript.ErrInvalidEndFormat),
		errors.Is(err, transcript.ErrEndNotAfterStart),
		errors.Is(err, transcript.ErrUnknownDisplayMode),
		errors.Is(err, transcript.ErrNoTranscriptLoaded):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail répond avec {"detail": message}, forme attendue par la page.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.log.Error("request failed", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(status, gin.H{"detail": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}
