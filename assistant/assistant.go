package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/processmind/process-mind/cliparse"
	"github.com/processmind/process-mind/models"
	"github.com/processmind/process-mind/store"
)

// Max characters of document text forwarded to the remote model.
const maxDocumentChars = 2000

// RemoteClient is the hosted-model side of the assistant. Implemented
// by openAIRemote in production and by fakes in tests.
type RemoteClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Reply is a produced answer tagged with the path that produced it.
type Reply struct {
	Text   string
	Source string // models.AnswerSourceRemote or models.AnswerSourceLocal
}

// Assistant answers operator questions over municipal aggregates,
// preferring the remote model when configured and always falling back
// to the local keyword router.
type Assistant struct {
	store   *store.Store
	remote  RemoteClient // nil means local-only mode
	timeout time.Duration
	log     *slog.Logger
}

// New builds an Assistant from the configuration. Without an API key
// the remote path stays nil and every answer is produced locally.
func New(st *store.Store, cfg cliparse.Config, log *slog.Logger) *Assistant {
	a := &Assistant{store: st, timeout: cfg.RemoteTimeout, log: log}
	if cfg.RemoteEnabled() {
		clientCfg := openai.DefaultConfig(cfg.OpenAIKey)
		if cfg.OpenAIBaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAIBaseURL
		}
		a.remote = &openAIRemote{
			client: openai.NewClientWithConfig(clientCfg),
			model:  cfg.OpenAIModel,
		}
	}
	return a
}

// NewWithRemote builds an Assistant with an explicit remote client.
// Used by tests to force remote failures.
func NewWithRemote(st *store.Store, remote RemoteClient, timeout time.Duration, log *slog.Logger) *Assistant {
	return &Assistant{store: st, remote: remote, timeout: timeout, log: log}
}

// Answer produces a reply for the question in the given municipal
// context. The remote model is attempted first when configured; any
// remote failure silently falls back to the local responder within
// the same call. The completed exchange is appended to the chat log;
// a log write failure never fails the answer.
func (a *Assistant) Answer(ctx context.Context, question string, mctx Context, doc Document) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, fmt.Errorf("question is empty")
	}

	reply := a.produce(ctx, question, mctx, doc)

	var attached *string
	if doc.Name != "" {
		name := doc.Name
		attached = &name
	}
	if err := a.store.SaveChat(mctx.MunicipalityID, question, reply.Text, attached); err != nil {
		a.log.Warn("failed to persist chat exchange", "municipio_id", mctx.MunicipalityID, "error", err)
	}

	return reply, nil
}

func (a *Assistant) produce(ctx context.Context, question string, mctx Context, doc Document) Reply {
	if a.remote != nil {
		rctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		text, err := a.remote.Complete(rctx, systemPrompt(mctx, doc), question)
		if err == nil && strings.TrimSpace(text) != "" {
			return Reply{Text: strings.TrimSpace(text), Source: models.AnswerSourceRemote}
		}
		a.log.Warn("remote assistant failed, falling back to local responder", "error", err)
	}

	return Reply{Text: localAnswer(question, mctx, doc), Source: models.AnswerSourceLocal}
}

// systemPrompt builds the remote model's instruction block: role, the
// municipal aggregate summary, and a bounded excerpt of any document.
func systemPrompt(mctx Context, doc Document) string {
	var b strings.Builder
	b.WriteString("Você é um assistente especializado em dados municipais do sistema PROCESS MIND.\n")
	b.WriteString("Responda de forma clara e objetiva sobre os dados do município.\n\n")
	b.WriteString(mctx.Summary())
	if doc.Text != "" {
		excerpt := doc.Text
		if len(excerpt) > maxDocumentChars {
			excerpt = excerpt[:maxDocumentChars] + "..."
		}
		b.WriteString("\n\nDocumento fornecido:\n")
		b.WriteString(excerpt)
	}
	b.WriteString("\n\nResponda sempre em português brasileiro, seja preciso com os números e cite as fontes (CNES, IBGE, etc.).")
	return b.String()
}

type openAIRemote struct {
	client *openai.Client
	model  string
}

func (r *openAIRemote) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
