package agent

import (
	"net/http"
	"os"
	"strings"
	"unicode/utf8"
)

// TextModel is the single chat model every agent resolves to. Voice
// detection still runs so callers can log the interaction type, but a
// dedicated voice model is no longer provisioned.
const TextModel = "gpt-4o-mini"

// InteractionType distinguishes how the user is talking to the system.
type InteractionType string

const (
	InteractionVoice InteractionType = "voice"
	InteractionText  InteractionType = "text"
	InteractionAuto  InteractionType = "auto"
)

// SelectionInput carries the request signals used for voice detection.
// Every field is optional.
type SelectionInput struct {
	Interaction InteractionType
	ForceModel  string
	Headers     http.Header
	URL         string
	UserAgent   string
	Input       []byte
}

var voiceEnvVars = []string{
	"VOICE_INTERACTION",
	"AUDIO_INPUT",
	"SPEECH_RECOGNITION",
	"RECRUITING_AGENCY_VOICE_MODE",
}

var voiceURLPatterns = []string{
	"/voice", "/audio", "/speech", "/call", "/phone",
	"/webrtc", "/stream", "/live", "/conversation",
}

var voiceUserAgentWords = []string{
	"voice", "audio", "speech", "call", "phone",
	"webrtc", "stream", "live", "conversation",
}

var audioExtensions = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".aac"}

// ModelFor picks the chat model for a request. ForceModel wins outright;
// everything else resolves to TextModel.
func ModelFor(in SelectionInput) string {
	if in.ForceModel != "" {
		return in.ForceModel
	}
	return TextModel
}

// DetectInteraction classifies a request as voice or text. An explicit
// Interaction of voice or text is respected; auto (or empty) runs every
// detector and falls back to text.
func DetectInteraction(in SelectionInput) InteractionType {
	switch in.Interaction {
	case InteractionVoice, InteractionText:
		return in.Interaction
	}

	if voiceFromHeaders(in.Headers) ||
		voiceFromEnvironment() ||
		voiceFromInput(in.Input) ||
		voiceFromURL(in.URL) ||
		voiceFromUserAgent(in.UserAgent) {
		return InteractionVoice
	}
	return InteractionText
}

func voiceFromHeaders(headers http.Header) bool {
	if headers == nil {
		return false
	}

	contentType := strings.ToLower(headers.Get("Content-Type"))
	if strings.Contains(contentType, "audio/") || strings.Contains(contentType, "multipart/audio") {
		return true
	}

	if headers.Get("X-Voice-Interaction") == "true" {
		return true
	}

	for _, name := range []string{"X-Webrtc", "X-Voice-Api", "X-Audio-Stream"} {
		if headers.Get(name) != "" {
			return true
		}
	}
	return false
}

func voiceFromEnvironment() bool {
	for _, name := range voiceEnvVars {
		switch strings.ToLower(os.Getenv(name)) {
		case "true", "1", "yes", "on":
			return true
		}
	}
	return false
}

// voiceFromInput treats undecodable bytes as audio and otherwise looks for
// audio file extensions in the text.
func voiceFromInput(input []byte) bool {
	if len(input) == 0 {
		return false
	}
	if !utf8.Valid(input) {
		return true
	}

	text := strings.ToLower(string(input))
	for _, ext := range audioExtensions {
		if strings.Contains(text, ext) {
			return true
		}
	}
	return false
}

func voiceFromURL(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, pattern := range voiceURLPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

func voiceFromUserAgent(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	lower := strings.ToLower(userAgent)
	for _, word := range voiceUserAgentWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
