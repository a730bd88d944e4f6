package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/subtitle"
)

var (
	srtOutputFile string
)

var srtCmd = &cobra.Command{
	Use:   "srt [FILE.srt]",
	Short: "Extract the text from a .srt subtitle file",
	Long:  `This command strips sequence numbers and timing lines from a .srt file, leaving only the subtitle text.`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// init core
		if !initialized {
			initCore(true)
			initialized = true
		}

		// set log
		log := logger.GetLogger("srt")

		text, err := subtitle.ExtractText(args[0])
		if err != nil {
			log.WithError(err).Fatal("Failed extracting subtitle text")
		}

		if srtOutputFile != "" {
			if err := os.WriteFile(srtOutputFile, []byte(text), 0o644); err != nil {
				log.WithError(err).Fatalf("Failed writing %q", srtOutputFile)
			}
			log.Infof("Subtitle text saved to %s", srtOutputFile)
			return
		}

		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(srtCmd)

	srtCmd.Flags().StringVarP(&srtOutputFile, "output", "o", "", "Write the text to a file instead of stdout")
}
