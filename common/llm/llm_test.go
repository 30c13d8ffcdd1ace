package llm

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("New", func() {
	It("returns ErrNotConfigured without an API key", func() {
		_, err := New(context.Background(), Config{Provider: ProviderGemini})
		Expect(err).To(MatchError(ErrNotConfigured))
	})

	It("rejects an unknown provider", func() {
		_, err := New(context.Background(), Config{Provider: "cohere", APIKey: "key"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unsupported llm provider"))
	})

	It("builds an openai client with the default model", func() {
		client, err := New(context.Background(), Config{Provider: ProviderOpenAI, APIKey: "key"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o-mini"))
	})

	It("builds an anthropic client with an explicit model", func() {
		client, err := New(context.Background(), Config{
			Provider: ProviderAnthropic,
			APIKey:   "key",
			Model:    "claude-haiku-4-5",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("claude-haiku-4-5"))
	})
})

var _ = Describe("gemini role translation", func() {
	It("maps the internal assistant role to the wire role 'model'", func() {
		Expect(geminiRoles[RoleAssistant]).To(Equal("model"))
	})

	It("maps the internal user role to 'user'", func() {
		Expect(geminiRoles[RoleUser]).To(Equal("user"))
	})

	It("covers exactly the internal vocabulary", func() {
		Expect(geminiRoles).To(HaveLen(2))
	})
})
