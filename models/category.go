package models

import (
	"encoding/json"
	"strings"
)

// FeedbackCategory classifies what kind of feedback an item is.
type FeedbackCategory string

const (
	CategoryFeatureRequest FeedbackCategory = "feature_request"
	CategoryBugReport      FeedbackCategory = "bug_report"
	CategoryImprovement    FeedbackCategory = "improvement"
	CategoryOther          FeedbackCategory = "other"
)

// Categories lists every known category.
var Categories = []FeedbackCategory{
	CategoryFeatureRequest,
	CategoryBugReport,
	CategoryImprovement,
	CategoryOther,
}

// ParseFeedbackCategory parses a wire string into a category. Matching is
// case-insensitive and accepts a few known aliases. Unrecognized values
// return ok=false rather than an error.
func ParseFeedbackCategory(s string) (FeedbackCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feature_request", "featurerequest":
		return CategoryFeatureRequest, true
	case "bug_report", "bugreport":
		return CategoryBugReport, true
	case "improvement":
		return CategoryImprovement, true
	case "other":
		return CategoryOther, true
	}
	return "", false
}

// DisplayName returns a human-readable name for the category.
func (c FeedbackCategory) DisplayName() string {
	switch c {
	case CategoryFeatureRequest:
		return "Feature Request"
	case CategoryBugReport:
		return "Bug Report"
	case CategoryImprovement:
		return "Improvement"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

func (c FeedbackCategory) String() string { return string(c) }

func (c FeedbackCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON decodes a category from its wire string. Unknown values
// decode to the zero value rather than failing.
func (c *FeedbackCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _ := ParseFeedbackCategory(raw)
	*c = parsed
	return nil
}
