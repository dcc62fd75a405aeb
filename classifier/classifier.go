// Package classifier derives the subjects and keywords a question belongs to
// by matching the question text against the known reference strings.
package classifier

// Subject is the part of a stored subject the classifier reads.
type Subject struct {
	ID   int64
	Name string
}

// Keyword is the part of a stored keyword the classifier reads.
type Keyword struct {
	ID        int64
	Value     string
	SubjectID int64
}

// Category is a matched subject and the keywords of that subject found in the text.
type Category struct {
	Subject  string   `json:"subject"`
	Keywords []string `json:"keywords"`
}

type Classifier struct {
	strategy MatchStrategy
}

// New returns a Classifier using strategy, or the substring strategy when nil.
func New(strategy MatchStrategy) *Classifier {
	if strategy == nil {
		strategy = SubstringCaseInsensitive{}
	}
	return &Classifier{strategy: strategy}
}

func (c *Classifier) Strategy() MatchStrategy {
	return c.strategy
}

// Classify matches text against subjects and, for each matched subject, its keywords.
// Categories follow the order of subjects and keywords follow the order of keywords.
// A subject whose name is not found contributes nothing, keywords included.
// The result is never nil.
func (c *Classifier) Classify(text string, subjects []Subject, keywords []Keyword) []Category {
	haystack := c.strategy.Prepare(text)
	categories := make([]Category, 0)
	for _, subject := range subjects {
		if !haystack.Contains(subject.Name) {
			continue
		}
		category := Category{
			Subject:  subject.Name,
			Keywords: make([]string, 0),
		}
		for _, keyword := range keywords {
			if keyword.SubjectID != subject.ID {
				continue
			}
			if haystack.Contains(keyword.Value) {
				category.Keywords = append(category.Keywords, keyword.Value)
			}
		}
		categories = append(categories, category)
	}
	return categories
}

var defaultClassifier = New(nil)

// Classify runs the default case-insensitive substring classifier.
func Classify(text string, subjects []Subject, keywords []Keyword) []Category {
	return defaultClassifier.Classify(text, subjects, keywords)
}
