package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/pdf"
)

var pdftextCmd = &cobra.Command{
	Use:   "pdftext [IN.pdf] [OUT.txt]",
	Short: "Extract the text of a PDF file",
	Long:  `This command extracts the plain text of every page of a PDF file into a UTF-8 text file.`,

	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// init core
		if !initialized {
			initCore(true)
			initialized = true
		}

		// set log
		log := logger.GetLogger("pdftext")

		if err := pdf.ExtractToFile(args[0], args[1]); err != nil {
			log.WithError(err).Fatal("Failed extracting pdf text")
		}

		log.Infof("Text extracted and saved to %s", args[1])
	},
}

func init() {
	rootCmd.AddCommand(pdftextCmd)
}
