package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/executor"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/transcriber"
)

var (
	transcribeKeepAudio  bool
	transcribeOutputFile string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [VIDEO-URL]",
	Short: "Transcribe the audio of a video URL",
	Long: `This command downloads the audio of a video, splits it into chunks and
sends each chunk to the configured speech-to-text API. Requires yt-dlp and
ffmpeg on the PATH and a transcriber api key in the config or the
FKIT_TRANSCRIBER_API_KEY environment variable.`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		start := time.Now()

		// init core
		if !initialized {
			initCore(true)
			initialized = true
		}

		// set log
		log := logger.GetLogger("transcribe")

		t := transcriber.New(config.Config.Transcriber, executor.New())
		t.KeepAudio = transcribeKeepAudio

		text, err := t.Transcribe(ctx, args[0])
		if err != nil {
			log.WithError(err).Fatal("Failed transcribing")
		}

		log.Infof("Transcribed in %s", time.Since(start).Truncate(time.Second))

		if transcribeOutputFile != "" {
			if err := os.WriteFile(transcribeOutputFile, []byte(text), 0o644); err != nil {
				log.WithError(err).Fatalf("Failed writing %q", transcribeOutputFile)
			}
			log.Infof("Transcript saved to %s", transcribeOutputFile)
			return
		}

		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().BoolVar(&transcribeKeepAudio, "keep-audio", false, "Keep audio files after transcription")
	transcribeCmd.Flags().StringVarP(&transcribeOutputFile, "output", "o", "", "Write the transcript to a file instead of stdout")
}
