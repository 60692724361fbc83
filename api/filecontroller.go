package api

import (
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"diggi/media"

	"github.com/gin-gonic/gin"
)

var documentExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// handleAnalyzeFile accepts an audio, video, or text upload, turns it into a
// transcript or document text, derives search keywords, and runs the full
// pipeline on them.
func (s *Server) handleAnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	priorContext := c.PostForm("context")

	tmpPath := filepath.Join(os.TempDir(), "diggi-upload-"+filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload: " + err.Error()})
		return
	}
	defer os.Remove(tmpPath)

	ctx := c.Request.Context()
	filename := strings.ToLower(fileHeader.Filename)
	log.Printf("api: processing upload %s", filename)

	var text string
	switch {
	case media.IsAudioVisual(filename):
		text = s.transcriber.Transcribe(ctx, tmpPath)
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not transcribe the uploaded file."})
			return
		}
	case documentExtensions[filepath.Ext(filename)]:
		text, err = s.documents.ExtractText(tmpPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from document."})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type."})
		return
	}

	summary, err := s.summarizer.SummarizeText(ctx, text)
	if err != nil || summary == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not summarize the uploaded content."})
		return
	}

	keywords, err := s.summarizer.ExtractKeywords(ctx, summary)
	if err != nil || keywords == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not derive keywords from the upload."})
		return
	}

	result := s.runner.Run(ctx, keywords, priorContext)
	if result.Error != "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, result)
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// handleAnalyzeImage describes an uploaded news photo.
func (s *Server) handleAnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if !imageExtensions[filepath.Ext(strings.ToLower(fileHeader.Filename))] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Please upload a PNG or JPG file."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload: " + err.Error()})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload: " + err.Error()})
		return
	}

	description, err := s.summarizer.DescribeImage(c.Request.Context(), base64.StdEncoding.EncodeToString(raw))
	if err != nil || description == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate description from image."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}
