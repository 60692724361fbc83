package media

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"diggi/types"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioTranscriber turns an audio file into text.
type AudioTranscriber interface {
	TranscribeAudio(ctx context.Context, path string) (string, error)
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
}

// IsAudioVisual reports whether the filename looks like an audio or video
// upload that should go through transcription.
func IsAudioVisual(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return videoExtensions[ext] || audioExtensions[ext]
}

// Transcriber produces a transcript string from an audio or video file.
// Video files have their audio track demuxed with ffmpeg first. The caller
// only ever sees plain text; any failure resolves to "".
type Transcriber struct {
	transcriber AudioTranscriber
}

// NewTranscriber wires the model-backed audio transcriber.
func NewTranscriber(t AudioTranscriber) *Transcriber {
	return &Transcriber{transcriber: t}
}

// Transcribe returns the spoken text of the file at path, or "".
func (t *Transcriber) Transcribe(ctx context.Context, path string) string {
	audioPath := path
	if videoExtensions[strings.ToLower(filepath.Ext(path))] {
		demuxed := filepath.Join(os.TempDir(), types.GenerateID(path)+"_audio.mp3")
		if err := demuxAudio(path, demuxed); err != nil {
			log.Printf("media: audio demux failed for %s: %v", path, err)
			return ""
		}
		defer os.Remove(demuxed)
		audioPath = demuxed
	}

	text, err := t.transcriber.TranscribeAudio(ctx, audioPath)
	if err != nil {
		log.Printf("media: transcription failed for %s: %v", path, err)
		return ""
	}
	return text
}

// demuxAudio strips the video stream and writes an mp3 audio track.
func demuxAudio(src, dst string) error {
	return ffmpeg.Input(src).
		Output(dst, ffmpeg.KwArgs{
			"vn":     "",
			"acodec": "libmp3lame",
			"b:a":    "192k",
		}).
		OverWriteOutput().
		Run()
}
