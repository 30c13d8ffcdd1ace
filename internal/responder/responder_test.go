package responder_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mailroom.app/triage/common/llm"
	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/responder"
)

type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Model() string { return "fake" }

var _ = Describe("Generator", func() {
	ctx := context.Background()

	Context("without a configured service", func() {
		gen := responder.New(nil)

		It("returns the canonical productive template", func() {
			reply := gen.Suggest(ctx, domain.CategoryProductive, "preciso de ajuda")
			Expect(reply).To(Equal("Olá! Recebemos sua solicitação e nossa equipe irá analisar e retornar o mais breve possível. Obrigado."))
		})

		It("returns the canonical unproductive template", func() {
			reply := gen.Suggest(ctx, domain.CategoryUnproductive, "feliz natal")
			Expect(reply).To(Equal("Obrigado pela sua mensagem! No momento nenhuma ação é necessária. Abraços."))
		})
	})

	Context("with a working service", func() {
		It("returns the generated reply, trimmed", func() {
			fake := &fakeLLM{reply: "  Olá, vamos verificar o chamado.  \n"}
			gen := responder.New(fake)

			reply := gen.Suggest(ctx, domain.CategoryProductive, "reabram o chamado 123")
			Expect(reply).To(Equal("Olá, vamos verificar o chamado."))
		})

		It("embeds category and raw text in the prompt", func() {
			fake := &fakeLLM{reply: "ok"}
			gen := responder.New(fake)

			gen.Suggest(ctx, domain.CategoryProductive, "Anexo o contrato!")
			Expect(fake.lastPrompt).To(ContainSubstring("Produtivo"))
			Expect(fake.lastPrompt).To(ContainSubstring("Anexo o contrato!"))
		})
	})

	Context("with a failing service", func() {
		It("falls back to the category template", func() {
			fake := &fakeLLM{err: errors.New("quota exceeded")}
			gen := responder.New(fake)

			reply := gen.Suggest(ctx, domain.CategoryUnproductive, "obrigado!")
			Expect(reply).To(Equal(responder.Template(domain.CategoryUnproductive)))
		})

		It("never surfaces an empty external reply", func() {
			fake := &fakeLLM{reply: "   "}
			gen := responder.New(fake)

			reply := gen.Suggest(ctx, domain.CategoryProductive, "status?")
			Expect(reply).To(Equal(responder.Template(domain.CategoryProductive)))
		})
	})
})
