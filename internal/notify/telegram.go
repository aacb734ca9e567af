package notify

import (
	"context"
	"strconv"

	"gopkg.in/telebot.v3"

	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

// NewTelegramSender delivers messages over a Telegram bot to users
// who linked a chat id to their profile.
func NewTelegramSender(cfg Config, profiles users.API, log logger.Logger) (*TelegramSender, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.Telegram.PollInterval},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "init telegram bot")
	}

	return &TelegramSender{
		bot:      bot,
		profiles: profiles,
		log:      log.With("telegram_sender"),
	}, nil
}

type TelegramSender struct {
	bot      *telebot.Bot
	profiles users.API
	log      logger.Logger
}

func (t *TelegramSender) Send(ctx context.Context, userID string, text string) error {
	u, err := t.profiles.Get(ctx, userID)
	if err != nil {
		return errors.WrapFail(err, "resolve recipient")
	}

	if u.Telegram == 0 {
		// profile has no linked chat, nothing to deliver to
		t.log.Debugf("user %s has no telegram chat", userID)
		return nil
	}

	_, err = t.bot.Send(chat(u.Telegram), text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return errors.WrapFail(err, "send telegram message")
}

type chat int64

func (c chat) Recipient() string {
	return strconv.FormatInt(int64(c), 10)
}
