package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	session  *discordgo.Session
	commands *Commands
	log      *zap.SugaredLogger
}

func NewBot(token string, commands *Commands, log *zap.SugaredLogger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	bot := &Bot{session: s, commands: commands, log: log}
	s.AddHandler(bot.onMessage)
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}

	log.Infow("discord bot connected", "user", s.State.User.Username)
	return bot, nil
}

func (b *Bot) Close() {
	if err := b.session.Close(); err != nil {
		b.log.Warnw("closing discord session", "error", err)
	}
}
