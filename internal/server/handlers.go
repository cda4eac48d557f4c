package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/videobrief/videobrief/internal/acquirer"
	"github.com/videobrief/videobrief/internal/analyzer"
	"github.com/videobrief/videobrief/internal/exporter"
	"github.com/videobrief/videobrief/internal/pipeline"
)

// exportContentTypes maps export formats onto download MIME types.
var exportContentTypes = map[string]string{
	"markdown": "text/markdown; charset=utf-8",
	"word":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pdf":      "application/pdf",
}

func (s *Server) uploadHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field 'video'"})
		return
	}
	defer file.Close()

	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	if header.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds size limit"})
		return
	}

	src, err := s.acquirer.SaveUpload(c.Request.Context(), file, header.Filename)
	if err != nil {
		if errors.Is(err, acquirer.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	sess := pipeline.NewSession(uuid.NewString(), name, src, s.logger)
	s.store.put(sess)

	c.JSON(http.StatusCreated, gin.H{
		"id":     sess.ID,
		"name":   sess.Name,
		"source": src,
	})
}

func (s *Server) downloadHandler(c *gin.Context) {
	var body struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	if !acquirer.IsVideoURL(body.URL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized video URL"})
		return
	}

	src, err := s.acquirer.Download(c.Request.Context(), body.URL)
	if err != nil {
		switch {
		case errors.Is(err, acquirer.ErrDownloaderMissing), errors.Is(err, acquirer.ErrMediaToolMissing):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, acquirer.ErrSourceUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	name := body.Name
	if name == "" {
		name = "YouTube_Video"
	}
	sess := pipeline.NewSession(uuid.NewString(), name, src, s.logger)
	s.store.put(sess)

	c.JSON(http.StatusCreated, gin.H{
		"id":     sess.ID,
		"name":   sess.Name,
		"source": src,
	})
}

func (s *Server) summarizeHandler(c *gin.Context) {
	sess, ok := s.store.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	bundle, err := s.pipeline.Run(c.Request.Context(), sess.Source, sess.Name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, analyzer.ErrMissingCredential) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	sess.SetBundle(bundle)

	c.JSON(http.StatusOK, bundle)
}

func (s *Server) resultHandler(c *gin.Context) {
	sess, ok := s.store.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	bundle := sess.Bundle()
	if bundle == nil {
		c.JSON(http.StatusOK, gin.H{
			"id":     sess.ID,
			"name":   sess.Name,
			"source": sess.Source,
			"status": "pending",
		})
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) exportHandler(c *gin.Context) {
	sess, ok := s.store.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	bundle := sess.Bundle()
	if bundle == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no summary has been generated for this session"})
		return
	}

	format := c.Param("format")
	filename, err := exporter.Filename(bundle.Name, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var payload []byte
	switch format {
	case "markdown":
		payload = []byte(s.exporter.Markdown(ctx, bundle))
	case "word":
		data, ok := s.exporter.Word(ctx, bundle)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word export is unavailable; enable export.word in the configuration"})
			return
		}
		payload = data
	case "pdf":
		data, ok := s.exporter.PDF(ctx, bundle)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "PDF export is unavailable; enable export.pdf in the configuration"})
			return
		}
		payload = data
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, exportContentTypes[format], payload)
}

func (s *Server) deleteHandler(c *gin.Context) {
	if !s.store.remove(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
