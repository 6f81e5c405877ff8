// Package tips asks OpenAI for short cleaning tips shown by the /cleaning tip command.
package tips

import (
	"context"
	"strings"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"
)

const (
	MissingKeyTip = "Add an OpenAI API key to receive cleaning tips!"
	EmptyTip      = "Keep the building clean for everyone's well-being!"
	FailureTip    = "Cooperation is the key to a well-kept building."
)

const tipPrompt = "Give one short and practical tip, at most 30 words, about cleaning the common areas " +
	"of a small residential building (stairs, corridors, garage, barbecue area, trash shelter). " +
	"Use a friendly and motivating tone. Answer with the tip only."

const requestTimeout = 15 * time.Second

type OpenAITips struct {
	client *openai.Client
	model  shared.ChatModel
	log    *zap.Logger
}

var _ contract.TipProvider = (*OpenAITips)(nil)

// NewOpenAITips returns a provider that always answers with MissingKeyTip
// when apiKey is empty
func NewOpenAITips(apiKey, model string, log *zap.Logger, opts ...option.RequestOption) *OpenAITips {
	if log == nil {
		log = zap.NewNop()
	}
	if model == "" {
		model = string(shared.ChatModelGPT4oMini)
	}

	t := &OpenAITips{model: shared.ChatModel(model), log: log.Named("tips")}
	if apiKey == "" {
		return t
	}

	c := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	t.client = &c
	return t
}

func (t *OpenAITips) Tip(ctx context.Context) string {
	if t.client == nil {
		return MissingKeyTip
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(tipPrompt),
		},
	})
	if err != nil {
		t.log.Warn("failed to get cleaning tip", zap.Error(err))
		return FailureTip
	}

	if len(resp.Choices) == 0 {
		return EmptyTip
	}
	tip := strings.TrimSpace(resp.Choices[0].Message.Content)
	if tip == "" {
		return EmptyTip
	}

	return tip
}
