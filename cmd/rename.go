package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/notification"
	"github.com/arvheim/fkit/pkg/renamer"
)

var (
	renamePrefixLength int
)

var renameCmd = &cobra.Command{
	Use:   "rename [DIRECTORY]",
	Short: "Rename files to a prefix of their content digest",
	Long: `This command renames every file under the given directory to the leading
hex characters of its full-content digest, keeping the extension and the
directory. Name collisions are disambiguated with a numeric suffix, never
overwritten.`,

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
		log := logger.GetLogger("rename")

		noti := notification.NewDiscordSender(log, config.Config.Notifications)

		prefixLength := renamePrefixLength
		if !cmd.Flags().Changed("length") {
			prefixLength = config.Config.Rename.PrefixLength
		}

		n, err := renamer.New(prefixLength)
		if err != nil {
			log.WithError(err).Fatal("Invalid rename options")
		}

		n.Filters = compileFilters(log)
		n.DryRun = flagDryRun

		var fields []notification.Field
		if noti.CanSend() {
			n.OnRename = func(oldPath string, newName string) {
				fields = append(fields, noti.BuildField(notification.ActionRename, notification.BuildOptions{
					OldName: oldPath,
					NewName: newName,
				}))
			}
		}

		renamed, err := n.Normalize(ctx, args[0])
		if err != nil {
			log.WithError(err).Fatal("Failed renaming files")
		}

		log.Infof("Renamed %d files in %s", renamed, time.Since(start).Truncate(time.Millisecond))

		// send notification
		if noti.CanSend() {
			description := fmt.Sprintf("Renamed %d files under %q", renamed, args[0])
			if err := noti.Send("Hash rename", description, time.Since(start), fields, flagDryRun); err != nil {
				log.WithError(err).Errorf("Failed sending notification via %s", noti.Name())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().IntVarP(&renamePrefixLength, "length", "n", renamer.DefaultPrefixLength,
		"Number of digest hex characters to use for new file names")
}
