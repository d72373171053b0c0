package diagnosis

// Classifier is a rule that may explain a wrong answer. Classify returns
// ("", 0) when the rule does not apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorCategory, float64)
}

// DefaultClassifiers returns every misconception rule in catalogue order,
// followed by the slip rules.
func DefaultClassifiers() []Classifier {
	out := make([]Classifier, 0, len(seedMisconceptions)+2)
	for _, m := range AllMisconceptions() {
		out = append(out, &MisconceptionClassifier{Misconception: m})
	}
	return append(out, &SpeedRushClassifier{}, &CarelessClassifier{})
}

// RunClassifiers runs every classifier and returns the match with the
// highest confidence. Ties go to the classifier listed first. It returns
// ("", 0, "") when nothing matches.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorCategory, float64, string) {
	var (
		best     ErrorCategory
		bestConf float64
		bestName string
	)
	for _, c := range classifiers {
		cat, conf := c.Classify(input)
		if cat != "" && (best == "" || conf > bestConf) {
			best, bestConf, bestName = cat, conf, c.Name()
		}
	}
	return best, bestConf, bestName
}
