package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/ratelimit"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/executor"
	"github.com/arvheim/fkit/pkg/httputils"
	"github.com/arvheim/fkit/pkg/logger"
)

func New(cfg config.TranscriberConfig, exec executor.Executor) *Transcriber {
	l := logger.GetLogger("transcriber")

	return &Transcriber{
		cfg:  cfg,
		exec: exec,
		http: httputils.NewRetryableHttpClient(5*time.Minute, ratelimit.New(1, ratelimit.WithoutSlack), l),
		log:  l,
	}
}

// Transcribe downloads the audio of videoURL, splits it into fixed-length
// chunks and sends each chunk to the transcription API, returning the
// chunk transcripts joined in order. Work files live in a temp directory
// that is removed unless KeepAudio is set.
func (t *Transcriber) Transcribe(ctx context.Context, videoURL string) (string, error) {
	if t.cfg.APIKey == "" {
		return "", fmt.Errorf("transcriber api key is not set (FKIT_TRANSCRIBER_API_KEY)")
	}
	if t.cfg.ChunkSeconds < 1 {
		return "", fmt.Errorf("chunk length %d must be positive", t.cfg.ChunkSeconds)
	}

	workDir := t.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "fkit-transcribe-")
		if err != nil {
			return "", errors.Wrap(err, "create work dir")
		}
		workDir = dir
	}

	if !t.KeepAudio {
		defer func() {
			if err := os.RemoveAll(workDir); err != nil {
				t.log.WithError(err).Warnf("Failed removing work dir %s", workDir)
			}
		}()
	} else {
		t.log.Infof("Keeping audio files in %s", workDir)
	}

	audioPath, err := t.downloadAudio(ctx, videoURL, workDir)
	if err != nil {
		return "", err
	}

	chunks, err := t.splitAudio(ctx, audioPath, workDir)
	if err != nil {
		return "", err
	}

	t.log.Infof("Transcribing %d chunks of %s", len(chunks), audioPath)

	transcripts := make([]string, 0, len(chunks))
	for idx, chunk := range chunks {
		text, err := t.transcribeChunk(ctx, chunk)
		if err != nil {
			return "", errors.Wrapf(err, "transcribe chunk %d", idx)
		}

		t.log.Debugf("Chunk %d/%d transcribed (%d chars)", idx+1, len(chunks), len(text))
		transcripts = append(transcripts, text)
	}

	return strings.Join(transcripts, "\n"), nil
}
