package ml

// ClassMetrics holds per-class evaluation numbers, mirroring a standard
// classification report.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1-score"`
	Support   int     `json:"support"`
}

// Report is the evaluation result for one split. Persisted as the metrics
// artifact; nothing reads it back programmatically.
type Report struct {
	Accuracy float64                 `json:"accuracy"`
	F1       float64                 `json:"f1"`
	PerClass map[string]ClassMetrics `json:"per_class"`
}

// Evaluate computes accuracy, positive-class F1 and a per-class
// precision/recall/support report from parallel truth and prediction slices.
func Evaluate(yTrue, yPred []int, classNames map[int]string) Report {
	var correct int
	// counts[class] = {true positive, false positive, false negative, support}
	type tally struct{ tp, fp, fn, support int }
	counts := map[int]*tally{0: {}, 1: {}}

	for i := range yTrue {
		truth, pred := yTrue[i], yPred[i]
		counts[truth].support++
		if pred == truth {
			correct++
			counts[truth].tp++
		} else {
			counts[pred].fp++
			counts[truth].fn++
		}
	}

	report := Report{PerClass: make(map[string]ClassMetrics, 2)}
	if len(yTrue) > 0 {
		report.Accuracy = float64(correct) / float64(len(yTrue))
	}

	for class, t := range counts {
		m := ClassMetrics{Support: t.support}
		if t.tp+t.fp > 0 {
			m.Precision = float64(t.tp) / float64(t.tp+t.fp)
		}
		if t.tp+t.fn > 0 {
			m.Recall = float64(t.tp) / float64(t.tp+t.fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		report.PerClass[classNames[class]] = m
		if class == 1 {
			report.F1 = m.F1
		}
	}

	return report
}
