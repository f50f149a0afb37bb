package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/unrot/unrot/internal/models"
)

type ChatCmd struct {
	Message []string `arg:"" help:"Message to send."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	msg := strings.TrimSpace(strings.Join(c.Message, " "))
	if msg == "" {
		return fmt.Errorf("chat: empty message")
	}

	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	history := eng.ChatHistory()
	if _, err := eng.AppendChat(models.ChatRoleUser, msg); err != nil {
		return err
	}

	reply := ctx.Assistant.Chat(context.Background(), msg, history)
	if _, err := eng.AppendChat(models.ChatRoleAssistant, reply); err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}
