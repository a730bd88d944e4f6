package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/dupescan"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/notification"
)

var (
	dupesWorkers    int
	dupesNoProgress bool
)

var dupesCmd = &cobra.Command{
	Use:   "dupes [DIRECTORY]",
	Short: "Report files with byte-identical content",
	Long: `This command hashes every file under the given directory and reports files
whose content matches an earlier-seen file. Each duplicate is attributed to
the first file encountered with that content.`,

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
		log := logger.GetLogger("dupes")

		noti := notification.NewDiscordSender(log, config.Config.Notifications)

		scanner := dupescan.New()
		scanner.Filters = compileFilters(log)
		if dupesWorkers > 0 {
			scanner.Workers = dupesWorkers
		}

		var bar *progressbar.ProgressBar
		if !dupesNoProgress {
			scanner.OnWalkComplete = func(fileCount int, totalBytes uint64) {
				log.Infof("Hashing %d files (%s)", fileCount, humanize.IBytes(totalBytes))

				bar = progressbar.NewOptions64(
					int64(totalBytes),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("hashing"),
					progressbar.OptionShowBytes(true),
					progressbar.OptionClearOnFinish(),
				)
			}
			scanner.Progress = func(bytesHashed int64) {
				if bar != nil {
					_ = bar.Add64(bytesHashed)
				}
			}
		}

		records, err := scanner.Scan(ctx, args[0])
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			log.WithError(err).Fatal("Failed scanning for duplicates")
		}

		if len(records) == 0 {
			fmt.Println("No duplicate files found.")
		} else {
			for _, record := range records {
				fmt.Printf("%s is a duplicate of %s\n", record.Path, record.Original)
			}
		}

		log.Infof("Found %d duplicates in %s", len(records), time.Since(start).Truncate(time.Millisecond))

		// send notification
		if noti.CanSend() {
			fields := make([]notification.Field, 0, len(records))
			for _, record := range records {
				fields = append(fields, noti.BuildField(notification.ActionDuplicate, notification.BuildOptions{
					DuplicatePath: record.Path,
					OriginalPath:  record.Original,
					Size:          record.Size,
				}))
			}

			description := fmt.Sprintf("Found %d duplicates under %q", len(records), args[0])
			if err := noti.Send("Duplicate scan", description, time.Since(start), fields, flagDryRun); err != nil {
				log.WithError(err).Errorf("Failed sending notification via %s", noti.Name())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(dupesCmd)

	dupesCmd.Flags().IntVar(&dupesWorkers, "workers", 0, "Hashing workers (default: number of CPUs)")
	dupesCmd.Flags().BoolVar(&dupesNoProgress, "no-progress", false, "Disable the progress bar")
}
