package transcriber

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/executor"
)

type Transcriber struct {
	// KeepAudio leaves the downloaded audio and chunk files on disk after
	// the run.
	KeepAudio bool

	// WorkDir overrides the temp directory used for audio files.
	WorkDir string

	cfg  config.TranscriberConfig
	exec executor.Executor
	http *http.Client
	log  *logrus.Entry
}

type transcriptionResponse struct {
	Text string `json:"text"`
}
