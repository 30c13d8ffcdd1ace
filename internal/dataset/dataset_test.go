package dataset_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mailroom.app/triage/internal/dataset"
)

var _ = Describe("ParseLabel", func() {
	DescribeTable("maps raw labels to binary classes",
		func(raw string, wantLabel int, wantRecognized bool) {
			label, recognized := dataset.ParseLabel(raw)
			Expect(label).To(Equal(wantLabel))
			Expect(recognized).To(Equal(wantRecognized))
		},
		Entry("produtivo", "Produtivo", dataset.LabelProductive, true),
		Entry("productive english", "productive", dataset.LabelProductive, true),
		Entry("prod prefix", "prod", dataset.LabelProductive, true),
		Entry("uppercase", "PRODUTIVO", dataset.LabelProductive, true),
		Entry("improdutivo", "Improdutivo", dataset.LabelUnproductive, true),
		Entry("improd prefix", "improd", dataset.LabelUnproductive, true),
		Entry("unrecognized maps to negative", "spam", dataset.LabelUnproductive, false),
		Entry("empty is unrecognized", "", dataset.LabelUnproductive, false),
	)
})

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeDataset := func(content string) string {
		path := filepath.Join(dir, "dataset.json")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	It("loads labeled examples", func() {
		path := writeDataset(`[
			{"text": "Preciso de ajuda com o contrato", "label": "Produtivo"},
			{"text": "Feliz natal!", "label": "Improdutivo"}
		]`)

		examples, err := dataset.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(examples).To(HaveLen(2))
		Expect(examples[0].Label).To(Equal(dataset.LabelProductive))
		Expect(examples[1].Label).To(Equal(dataset.LabelUnproductive))
	})

	It("skips records with empty text or label", func() {
		path := writeDataset(`[
			{"text": "", "label": "Produtivo"},
			{"text": "   ", "label": "Produtivo"},
			{"text": "valido", "label": ""},
			{"text": "valido", "label": "Improdutivo"}
		]`)

		examples, err := dataset.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(examples).To(HaveLen(1))
	})

	It("anonymizes texts before they enter the corpus", func() {
		path := writeDataset(`[
			{"text": "fale com joao@empresa.com sobre o cpf 123.456.789-01", "label": "Produtivo"}
		]`)

		examples, err := dataset.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(examples[0].Text).To(Equal("fale com [EMAIL] sobre o cpf [CPF]"))
	})

	It("fails on a missing file", func() {
		_, err := dataset.Load(filepath.Join(dir, "missing.json"))
		Expect(err).To(HaveOccurred())
	})

	It("fails on malformed JSON", func() {
		path := writeDataset(`{not json`)
		_, err := dataset.Load(path)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Augment", func() {
	It("triples the productive subset and keeps unproductive unchanged", func() {
		in := []dataset.Example{
			{Text: "preciso do status", Label: dataset.LabelProductive},
			{Text: "feliz natal", Label: dataset.LabelUnproductive},
			{Text: "reabram o chamado", Label: dataset.LabelProductive},
		}

		out := dataset.Augment(in)

		var productive, unproductive int
		for _, ex := range out {
			if ex.Label == dataset.LabelProductive {
				productive++
			} else {
				unproductive++
			}
		}
		Expect(productive).To(Equal(6))
		Expect(unproductive).To(Equal(1))
	})

	It("keeps originals at their positions and appends synthetics", func() {
		in := []dataset.Example{
			{Text: "original", Label: dataset.LabelProductive},
		}

		out := dataset.Augment(in)
		Expect(out).To(HaveLen(3))
		Expect(out[0].Text).To(Equal("original"))
		Expect(out[1].Text).To(Equal("original Por favor, me retorne."))
		Expect(out[2].Text).To(Equal("Prezados, original"))
	})

	It("passes an all-unproductive corpus through unchanged", func() {
		in := []dataset.Example{
			{Text: "obrigado", Label: dataset.LabelUnproductive},
		}
		Expect(dataset.Augment(in)).To(Equal(in))
	})
})

var _ = Describe("StratifiedSplit", func() {
	makeCorpus := func(productive, unproductive int) []dataset.Example {
		var examples []dataset.Example
		for i := 0; i < productive; i++ {
			examples = append(examples, dataset.Example{Text: "p", Label: dataset.LabelProductive})
		}
		for i := 0; i < unproductive; i++ {
			examples = append(examples, dataset.Example{Text: "u", Label: dataset.LabelUnproductive})
		}
		return examples
	}

	countLabel := func(examples []dataset.Example, label int) int {
		n := 0
		for _, ex := range examples {
			if ex.Label == label {
				n++
			}
		}
		return n
	}

	It("partitions roughly 70/15/15", func() {
		split, err := dataset.StratifiedSplit(makeCorpus(100, 100), 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(split.Train).To(HaveLen(140))
		Expect(split.Val).To(HaveLen(30))
		Expect(split.Test).To(HaveLen(30))
	})

	It("preserves class proportions per partition", func() {
		split, err := dataset.StratifiedSplit(makeCorpus(60, 40), 42)
		Expect(err).NotTo(HaveOccurred())

		Expect(countLabel(split.Train, dataset.LabelProductive)).To(Equal(42))
		Expect(countLabel(split.Train, dataset.LabelUnproductive)).To(Equal(28))
		Expect(countLabel(split.Val, dataset.LabelProductive)).To(Equal(9))
		Expect(countLabel(split.Test, dataset.LabelProductive)).To(Equal(9))
	})

	It("is deterministic for a fixed seed", func() {
		corpus := makeCorpus(20, 20)
		a, err := dataset.StratifiedSplit(corpus, 42)
		Expect(err).NotTo(HaveOccurred())
		b, err := dataset.StratifiedSplit(corpus, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("rejects a single-class corpus", func() {
		_, err := dataset.StratifiedSplit(makeCorpus(10, 0), 42)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty corpus", func() {
		_, err := dataset.StratifiedSplit(nil, 42)
		Expect(err).To(HaveOccurred())
	})
})
