package dataset

import (
	"fmt"
	"math/rand"
)

// Split holds the three evaluation partitions of a corpus.
type Split struct {
	Train []Example
	Val   []Example
	Test  []Example
}

// Fractions for the train/validation/test partition.
const (
	trainFraction = 0.70
	valFraction   = 0.15
)

// StratifiedSplit partitions examples 70/15/15 while preserving the class
// proportion in every partition. The shuffle is seeded, so the same corpus
// and seed always produce the same partition.
func StratifiedSplit(examples []Example, seed int64) (Split, error) {
	byClass := map[int][]Example{}
	for _, ex := range examples {
		byClass[ex.Label] = append(byClass[ex.Label], ex)
	}

	if len(byClass[LabelProductive]) == 0 || len(byClass[LabelUnproductive]) == 0 {
		return Split{}, fmt.Errorf("stratified split requires examples of both classes (productive=%d, unproductive=%d)",
			len(byClass[LabelProductive]), len(byClass[LabelUnproductive]))
	}

	rng := rand.New(rand.NewSource(seed))
	var split Split

	// Iterate classes in fixed order so the result does not depend on map
	// iteration.
	for _, label := range []int{LabelUnproductive, LabelProductive} {
		class := append([]Example(nil), byClass[label]...)
		rng.Shuffle(len(class), func(i, j int) {
			class[i], class[j] = class[j], class[i]
		})

		nTrain := int(float64(len(class)) * trainFraction)
		nVal := int(float64(len(class)) * valFraction)

		split.Train = append(split.Train, class[:nTrain]...)
		split.Val = append(split.Val, class[nTrain:nTrain+nVal]...)
		split.Test = append(split.Test, class[nTrain+nVal:]...)
	}

	return split, nil
}
