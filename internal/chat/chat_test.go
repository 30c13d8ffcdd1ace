package chat_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mailroom.app/triage/common/llm"
	"mailroom.app/triage/internal/chat"
	"mailroom.app/triage/internal/domain"
)

type fakeLLM struct {
	reply       string
	err         error
	lastHistory []llm.Message
	lastMessage string
}

func (f *fakeLLM) Generate(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, message string) (string, error) {
	f.lastHistory = history
	f.lastMessage = message
	return f.reply, f.err
}

func (f *fakeLLM) Model() string { return "fake" }

var _ = Describe("Session", func() {
	ctx := context.Background()

	Context("without a configured service", func() {
		session := chat.New(nil)

		It("returns the unavailable reply with the history unchanged", func() {
			reply, history := session.Converse(ctx, "hello", nil)
			Expect(reply).To(Equal(chat.UnavailableReply()))
			Expect(history).To(BeEmpty())
		})

		It("echoes a non-empty history without appending", func() {
			prior := []domain.ChatTurn{
				{Role: domain.RoleUser, Content: "oi"},
				{Role: domain.RoleAssistant, Content: "olá!"},
			}
			_, history := session.Converse(ctx, "tudo bem?", prior)
			Expect(history).To(Equal(prior))
		})
	})

	Context("with a working service", func() {
		It("appends the user and assistant turns", func() {
			fake := &fakeLLM{reply: "Tudo ótimo!"}
			session := chat.New(fake)

			prior := []domain.ChatTurn{
				{Role: domain.RoleUser, Content: "oi"},
				{Role: domain.RoleAssistant, Content: "olá!"},
			}
			reply, history := session.Converse(ctx, "tudo bem?", prior)

			Expect(reply).To(Equal("Tudo ótimo!"))
			Expect(history).To(HaveLen(4))
			Expect(history[2]).To(Equal(domain.ChatTurn{Role: domain.RoleUser, Content: "tudo bem?"}))
			Expect(history[3]).To(Equal(domain.ChatTurn{Role: domain.RoleAssistant, Content: "Tudo ótimo!"}))
		})

		It("replays the prior history in the internal role vocabulary", func() {
			fake := &fakeLLM{reply: "ok"}
			session := chat.New(fake)

			prior := []domain.ChatTurn{
				{Role: domain.RoleUser, Content: "primeira"},
				{Role: domain.RoleAssistant, Content: "resposta"},
			}
			session.Converse(ctx, "segunda", prior)

			Expect(fake.lastMessage).To(Equal("segunda"))
			Expect(fake.lastHistory).To(Equal([]llm.Message{
				{Role: llm.RoleUser, Content: "primeira"},
				{Role: llm.RoleAssistant, Content: "resposta"},
			}))
		})

		It("does not mutate the caller's history slice", func() {
			fake := &fakeLLM{reply: "ok"}
			session := chat.New(fake)

			prior := make([]domain.ChatTurn, 1, 4)
			prior[0] = domain.ChatTurn{Role: domain.RoleUser, Content: "oi"}

			_, history := session.Converse(ctx, "mensagem", prior)
			Expect(history).To(HaveLen(3))
			Expect(prior).To(HaveLen(1))
			Expect(prior[0].Content).To(Equal("oi"))
		})
	})

	Context("with a failing service", func() {
		It("returns the apology and keeps the transcript replayable", func() {
			fake := &fakeLLM{err: errors.New("deadline exceeded")}
			session := chat.New(fake)

			prior := []domain.ChatTurn{{Role: domain.RoleUser, Content: "oi"}}
			reply, history := session.Converse(ctx, "tudo bem?", prior)

			Expect(reply).To(Equal(chat.ErrorReply()))
			Expect(history).To(Equal(prior))
		})
	})
})
