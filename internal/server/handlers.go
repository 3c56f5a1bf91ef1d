package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/patrickprogramme/webscribe/internal/export"
	"github.com/patrickprogramme/webscribe/internal/fsutil"
	"github.com/patrickprogramme/webscribe/internal/transcript"
	"github.com/patrickprogramme/webscribe/internal/webui"
	"github.com/patrickprogramme/webscribe/internal/yt"
	"github.com/patrickprogramme/webscribe/pkg/model"
)

const appTitle = "webscribe"

func (s *Server) handleIndex(c *gin.Context) {
	page, err := s.renderer.Render(webui.IndexTemplate, webui.DefaultIndexData(appTitle))
	if err != nil {
		s.log.Error("render index", "error", err.Error())
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleHealthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleFetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	videoID, ok := yt.ExtractVideoID(req.URL)
	if !ok {
		s.fail(c, yt.ErrInvalidURL)
		return
	}

	ctx := c.Request.Context()

	// métadonnées best-effort : un échec n'empêche pas de servir le transcript
	meta, err := s.source.Metadata(ctx, videoID)
	if err != nil {
		s.log.Warn("metadata fetch failed", "video_id", videoID, "error", err.Error())
		meta = nil
	}

	tracks, defaultCode, err := s.source.ListTracks(ctx, videoID)
	if err != nil {
		s.fail(c, err)
		return
	}

	language := req.Language
	if language == "" {
		language = defaultCode
	}

	segments, err := s.source.FetchSegments(ctx, videoID, language)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := FetchResponse{
		VideoID:         videoID,
		VideoURL:        model.VideoMeta{ID: videoID}.WatchURL(),
		DefaultLanguage: defaultCode,
		Language:        language,
		Segments:        segments,
	}
	for _, t := range tracks {
		resp.TranscriptLanguages = append(resp.TranscriptLanguages, LanguageOption{
			Code:        t.Code,
			Name:        t.Name,
			Label:       t.Label(),
			IsGenerated: t.IsGenerated,
		})
	}
	if meta != nil {
		resp.VideoTitle = meta.Title
		resp.VideoDescription = meta.Description
		resp.ThumbnailURL = meta.ThumbnailURL
		if meta.HasLength() {
			resp.VideoLength = meta.LengthSeconds
		}
	}

	start, end, err := transcript.ResolveRange(segments, "", "", resp.VideoLength)
	if err != nil {
		s.fail(c, err)
		return
	}
	resp.Start, resp.End = start, end

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleLoadTranscript(c *gin.Context) {
	var req LoadTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	segments, err := s.source.FetchSegments(c.Request.Context(), req.VideoID, req.Language)
	if err != nil {
		s.fail(c, err)
		return
	}

	start, end, err := transcript.ResolveRange(segments, "", "", 0)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, LoadTranscriptResponse{
		Language: req.Language,
		Segments: segments,
		Start:    start,
		End:      end,
	})
}

// renderText applique les options de mise en forme ; retourne aussi la plage
// canonique recalculée.
func (s *Server) renderText(req ApplyOptionsRequest) (text, start, end string, err error) {
	start, end, err = transcript.ResolveRange(req.Segments, req.Options.Start, req.Options.End, req.VideoLength)
	if err != nil {
		return "", "", "", err
	}

	modeStr := req.Options.DisplayMode
	if modeStr == "" {
		modeStr = s.cfg.Render.DisplayMode
	}
	mode, err := transcript.ParseDisplayMode(modeStr)
	if err != nil {
		return "", "", "", err
	}

	text = transcript.BuildFilteredText(req.Segments, transcript.RenderOptions{
		StartStr:           start,
		EndStr:             end,
		Mode:               mode,
		IncludeTitle:       req.Options.IncludeTitle,
		IncludeDescription: req.Options.IncludeDescription,
		VideoTitle:         req.VideoTitle,
		VideoDescription:   req.VideoDescription,
	})
	return text, start, end, nil
}

func (s *Server) handleApplyOptions(c *gin.Context) {
	var req ApplyOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	text, start, end, err := s.renderText(req)
	if err != nil {
		s.fail(c, err)
		return
	}

	sizeBytes := transcript.EstimateSizeBytes(text)
	c.JSON(http.StatusOK, ApplyOptionsResponse{
		Text:      text,
		Start:     start,
		End:       end,
		WordCount: transcript.WordCount(text),
		CharCount: transcript.CharCount(text),
		SizeBytes: sizeBytes,
		SizeStr:   transcript.FormatSize(sizeBytes),
	})
}

func (s *Server) handleExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		s.fail(c, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "no text to export"})
		return
	}

	data, err := export.Render(format, req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}

	base := fsutil.SanitizeFilename(req.Filename)
	filename := fmt.Sprintf("%s.%s", base, format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.MediaType(), data)
}
