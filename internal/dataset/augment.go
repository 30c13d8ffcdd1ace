package dataset

// Paraphrastic variants appended to every productive example. The productive
// class is the minority in the raw corpus, so each original contributes two
// synthetic copies with a polite closing or opening attached.
const (
	augmentSuffix = " Por favor, me retorne."
	augmentPrefix = "Prezados, "
)

// Augment expands the corpus with synthetic productive variants. Originals
// keep their positions; synthetics go at the end. For N productive inputs the
// output contains 3N productive examples, and the unproductive count is
// unchanged.
func Augment(examples []Example) []Example {
	out := make([]Example, len(examples), len(examples)*3)
	copy(out, examples)

	for _, ex := range examples {
		if ex.Label != LabelProductive {
			continue
		}
		out = append(out,
			Example{Text: ex.Text + augmentSuffix, Label: LabelProductive},
			Example{Text: augmentPrefix + ex.Text, Label: LabelProductive},
		)
	}

	return out
}
