package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain/notification"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
}

type discord struct {
	channelId string
	session   *discordgo.Session
}

// NewDiscord posts notices as embeds to one channel. Without a bot key
// notices are only logged.
func NewDiscord(cfg DiscordConfig) (notification.Notifier, error) {
	if cfg.BotKey == "" || cfg.ChannelId == "" {
		return &logNotifier{}, nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &discord{channelId: cfg.ChannelId, session: session}, nil
}

func (d *discord) Notify(c ctx.Ctx, notice notification.Notice) error {
	if _, err := d.session.ChannelMessageSendEmbed(d.channelId, toEmbed(notice)); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"title": notice.Title,
		}).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func toEmbed(notice notification.Notice) *discordgo.MessageEmbed {
	msg := &discordgo.MessageEmbed{
		Title:       notice.Title,
		Description: notice.Description,
		URL:         notice.Url,
	}
	if notice.ImageUrl != "" {
		msg.Image = &discordgo.MessageEmbedImage{URL: notice.ImageUrl}
	}
	for _, f := range notice.Fields {
		if f.Value == "" {
			continue
		}
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value})
	}
	return msg
}

type logNotifier struct{}

func (*logNotifier) Notify(c ctx.Ctx, notice notification.Notice) error {
	c.WithFields(log.Fields{
		"title":       notice.Title,
		"description": notice.Description,
		"url":         notice.Url,
	}).Info("notice")
	return nil
}
