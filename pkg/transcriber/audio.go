package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// downloadAudio pulls the best audio stream of videoURL into workDir as mp3
// via yt-dlp.
func (t *Transcriber) downloadAudio(ctx context.Context, videoURL string, workDir string) (string, error) {
	t.log.Infof("Downloading audio from %s", videoURL)

	outTemplate := filepath.Join(workDir, "audio.%(ext)s")

	_, err := t.exec.Execute(ctx, "yt-dlp",
		"--no-playlist",
		"-f", "bestaudio",
		"-x",
		"--audio-format", "mp3",
		"-o", outTemplate,
		videoURL,
	)
	if err != nil {
		return "", errors.Wrap(err, "download audio")
	}

	matches, err := filepath.Glob(filepath.Join(workDir, "audio.*"))
	if err != nil {
		return "", errors.Wrap(err, "locate downloaded audio")
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("yt-dlp produced no audio file in %s", workDir)
	}

	t.log.Infof("Audio downloaded to %s", matches[0])
	return matches[0], nil
}

// splitAudio cuts audioPath into ChunkSeconds-long pieces with the ffmpeg
// segment muxer, stream-copied, and returns the chunk paths in order.
func (t *Transcriber) splitAudio(ctx context.Context, audioPath string, workDir string) ([]string, error) {
	t.log.Infof("Splitting audio into %ds chunks", t.cfg.ChunkSeconds)

	chunkTemplate := filepath.Join(workDir, "chunk_%03d"+filepath.Ext(audioPath))

	_, err := t.exec.Execute(ctx, "ffmpeg",
		"-i", audioPath,
		"-f", "segment",
		"-segment_time", strconv.Itoa(t.cfg.ChunkSeconds),
		"-c", "copy",
		"-y",
		chunkTemplate,
	)
	if err != nil {
		return nil, errors.Wrap(err, "split audio")
	}

	chunks, err := filepath.Glob(filepath.Join(workDir, "chunk_*"+filepath.Ext(audioPath)))
	if err != nil {
		return nil, errors.Wrap(err, "locate audio chunks")
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("ffmpeg produced no chunks in %s", workDir)
	}

	sort.Strings(chunks)
	return chunks, nil
}
