// Package faq defines the canonical FAQ record emitted by every source.
package faq

import "time"

// Completeness tags a record with which of its core fields carry real
// content, so downstream consumers get an explicit signal instead of
// having to probe for empty strings.
type Completeness string

const (
	Complete     Completeness = "complete"
	QuestionOnly Completeness = "question_only"
	AnswerOnly   Completeness = "answer_only"
	Unparseable  Completeness = "unparseable"
)

// DefaultCategory is used when a source cannot determine a category.
const DefaultCategory = "General"

// Record is the canonical unit produced by all sources. Records are
// immutable after construction; there is no update or delete path.
type Record struct {
	Question     string       `json:"question,omitempty"`
	Answer       string       `json:"answer,omitempty"`
	Category     string       `json:"category"`
	Tags         []string     `json:"tags"`
	DatePosted   *time.Time   `json:"date_posted,omitempty"`
	DateUpdated  *time.Time   `json:"date_updated,omitempty"`
	Image        string       `json:"image,omitempty"`
	Completeness Completeness `json:"completeness"`
}

// New builds a record from extracted question/answer text plus the
// source's static metadata. An empty category falls back to
// DefaultCategory; tags are never nil so the JSON shape stays stable.
func New(question, answer, category string, tags []string) Record {
	if category == "" {
		category = DefaultCategory
	}
	if tags == nil {
		tags = []string{}
	}
	return Record{
		Question:     question,
		Answer:       answer,
		Category:     category,
		Tags:         tags,
		Completeness: Classify(question, answer),
	}
}

// Classify maps extracted question/answer text to a Completeness tag.
func Classify(question, answer string) Completeness {
	switch {
	case question != "" && answer != "":
		return Complete
	case question != "":
		return QuestionOnly
	case answer != "":
		return AnswerOnly
	default:
		return Unparseable
	}
}

// Emittable reports whether the record carries any content worth
// emitting. This is the single emission policy shared by all sources: a
// record leaves the pipeline iff at least one of question, answer or
// image is non-empty.
func (r Record) Emittable() bool {
	return r.Question != "" || r.Answer != "" || r.Image != ""
}
