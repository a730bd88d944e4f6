package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/notification"
	"github.com/arvheim/fkit/pkg/scraper"
)

var (
	fetchpdfOutputDir     string
	fetchpdfAllowExternal bool
)

var fetchpdfCmd = &cobra.Command{
	Use:   "fetchpdf [URL]",
	Short: "Download every PDF linked from a web page",
	Long: `This command fetches a web page, collects the anchors pointing at .pdf
documents and downloads each one. Links outside the page's own domain are
skipped unless --allow-external is set.`,

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
		log := logger.GetLogger("fetchpdf")

		noti := notification.NewDiscordSender(log, config.Config.Notifications)

		s := scraper.New(config.Config.Scraper)
		s.AllowExternal = fetchpdfAllowExternal

		var fields []notification.Field
		if noti.CanSend() {
			s.OnDownload = func(fileURL string) {
				fields = append(fields, noti.BuildField(notification.ActionFetch, notification.BuildOptions{
					URL: fileURL,
				}))
			}
		}

		downloaded, err := s.FetchAll(ctx, args[0], fetchpdfOutputDir)
		if err != nil {
			log.WithError(err).Fatal("Failed downloading pdfs")
		}

		log.Infof("Downloaded %d documents in %s", downloaded, time.Since(start).Truncate(time.Millisecond))

		// send notification
		if noti.CanSend() {
			description := fmt.Sprintf("Downloaded %d documents from %s", downloaded, args[0])
			if err := noti.Send("PDF fetch", description, time.Since(start), fields, flagDryRun); err != nil {
				log.WithError(err).Errorf("Failed sending notification via %s", noti.Name())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchpdfCmd)

	fetchpdfCmd.Flags().StringVarP(&fetchpdfOutputDir, "output", "o", ".", "Directory to save the documents")
	fetchpdfCmd.Flags().BoolVar(&fetchpdfAllowExternal, "allow-external", false, "Also download documents hosted on other domains")
}
