package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIGenerateQueuesJob(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/ai/generate", `{"prompt":"a cat surfing"}`))
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["job_id"])
	assert.Equal(t, "Job queued", body["message"])
}

func TestAIGenerateRequiresPrompt(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/ai/generate", `{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAITranscribe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/ai/transcribe", `{"url":"/uploads/a.mp4"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "en", body["language"])
	segments := body["segments"].([]interface{})
	assert.Len(t, segments, 2)
	first := segments[0].(map[string]interface{})
	assert.Equal(t, "Hello everyone", first["text"])

	w = env.do(postJSON("/ai/transcribe", `{"url":"/uploads/a.mp4","language":"de"}`))
	assert.Equal(t, "de", decodeBody(t, w)["language"])
}

func TestAITTS(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/ai/tts", `{"text":"hello"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	url, _ := decodeBody(t, w)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/tts/"))
	assert.True(t, strings.HasSuffix(url, ".wav"))
}

func TestAIEnhanceAudio(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/ai/enhance-audio", `{"url":"/uploads/a.wav"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "medium", body["strength"])

	w = env.do(postJSON("/ai/enhance-audio", `{"url":"/uploads/a.wav","strength":"extreme"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
