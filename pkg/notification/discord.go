package notification

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lucperkins/rek"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arvheim/fkit/pkg/config"
)

const (
	maxEmbedsPerMessage = 10

	// hardcoded limit of fields to avoid hammering the api
	maxTotalFields = 250
)

type DiscordMessage struct {
	Content interface{}    `json:"content"`
	Embeds  []DiscordEmbed `json:"embeds,omitempty"`
}

type DiscordEmbed struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Color       int                  `json:"color"`
	Fields      []DiscordEmbedsField `json:"fields,omitempty"`
	Footer      DiscordEmbedsFooter  `json:"footer,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
}

type DiscordEmbedsFooter struct {
	Text string `json:"text"`
}

type DiscordEmbedsField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedColors int

const (
	LIGHT_BLUE EmbedColors = 0x58b9ff
	RED        EmbedColors = 0xed4245
	GREEN      EmbedColors = 0x57f287
	GRAY       EmbedColors = 0x99aab5
)

type discordSender struct {
	log     *logrus.Entry
	config  config.NotificationsConfig
	webhook string
}

func NewDiscordSender(log *logrus.Entry, cfg config.NotificationsConfig) Sender {
	return &discordSender{
		log:     log.WithField("sender", "discord"),
		config:  cfg,
		webhook: cfg.Service.Discord,
	}
}

func (d *discordSender) Name() string {
	return "discord"
}

func (d *discordSender) CanSend() bool {
	return d.webhook != ""
}

func (d *discordSender) Send(title string, description string, runTime time.Duration, fields []Field, dryRun bool) error {
	if dryRun {
		title = title + " (Dry Run)"
	}

	if len(fields) == 0 && d.config.SkipEmptyRun {
		return nil
	}

	if len(fields) > maxTotalFields {
		fields = fields[:maxTotalFields]
	}

	rt := runTime.Truncate(time.Millisecond).String()
	timestamp := time.Now()

	var embedFields []DiscordEmbedsField
	if d.config.Detailed {
		for _, field := range fields {
			embedFields = append(embedFields, DiscordEmbedsField{
				Name:  field.Name,
				Value: field.Value,
			})
		}
	}

	var batches [][]DiscordEmbedsField
	if len(embedFields) == 0 {
		batches = [][]DiscordEmbedsField{nil}
	}
	for len(embedFields) > 0 {
		n := maxEmbedsPerMessage
		if n > len(embedFields) {
			n = len(embedFields)
		}
		batches = append(batches, embedFields[:n])
		embedFields = embedFields[n:]
	}

	for i, batch := range batches {
		msg := DiscordMessage{
			Content: nil,
			Embeds: []DiscordEmbed{
				{
					Title:       title,
					Description: description,
					Color:       int(LIGHT_BLUE),
					Fields:      batch,
					Footer: DiscordEmbedsFooter{
						Text: fmt.Sprintf("Run time: %s", rt),
					},
					Timestamp: timestamp,
				},
			},
		}

		if err := d.sendRequest(msg); err != nil {
			return errors.Wrapf(err, "send message %d/%d", i+1, len(batches))
		}

		d.log.Debugf("Sent Discord message %d/%d", i+1, len(batches))
	}

	return nil
}

func (d *discordSender) sendRequest(msg DiscordMessage) error {
	res, err := rek.Post(d.webhook, rek.Json(msg), rek.Timeout(30*time.Second))
	if err != nil {
		return errors.Wrap(err, "post webhook")
	}
	resBody := res.Body()
	defer resBody.Close()

	d.log.Tracef("Discord response status: %d", res.StatusCode())

	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusNoContent {
		body, readErr := io.ReadAll(resBody)
		if readErr != nil {
			return errors.Wrap(readErr, "read response body")
		}

		return fmt.Errorf("unexpected status %d: %s", res.StatusCode(), string(body))
	}

	d.log.Debug("Notification successfully sent to discord")
	return nil
}

// BuildField constructs a Field based on the provided action and build options.
func (d *discordSender) BuildField(action Action, opt BuildOptions) Field {
	switch action {
	case ActionDuplicate:
		return Field{
			Name:  fmt.Sprintf("%s (%s)", filepath.Base(opt.DuplicatePath), humanize.IBytes(uint64(opt.Size))),
			Value: fmt.Sprintf("%s is a duplicate of %s", opt.DuplicatePath, opt.OriginalPath),
		}
	case ActionRename:
		return Field{
			Name:  opt.OldName,
			Value: fmt.Sprintf("renamed to %s", opt.NewName),
		}
	case ActionFetch:
		return Field{
			Name:  filepath.Base(opt.URL),
			Value: fmt.Sprintf("downloaded from %s", opt.URL),
		}
	}

	return Field{}
}
