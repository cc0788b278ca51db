// Package quiz holds the prefilled multiple-choice banks shown by the
// course quiz runner. Bank selection is a prioritized rule list: exact
// category match first, then ordered keyword rules over the course
// title, then the generic default set. Grading is a pure comparison
// against the stored answer key; nothing here talks to the server.
package quiz

import "strings"

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// keywordRule maps a lowercased title substring to a bank. Order
// matters: "java" must be tested before "javascript" would shadow it,
// with the explicit script exclusion copied from the legacy rules.
type keywordRule struct {
	keyword string
	exclude string
	bank    string
}

var keywordRules = []keywordRule{
	{keyword: "python", bank: "Python"},
	{keyword: "java", exclude: "script", bank: "Java"},
	{keyword: "javascript", bank: "JavaScript"},
	{keyword: "c++", bank: "C++"},
	{keyword: "c#", bank: "C#"},
	{keyword: "go", bank: "Go"},
	{keyword: "swift", bank: "Swift"},
	{keyword: "php", bank: "PHP"},
	{keyword: "typescript", bank: "TypeScript"},
	{keyword: "sql", bank: "SQL"},
}

// ForCourse picks the quiz for a course. This is content
// configuration, not core logic: banks are static and five questions
// each.
func ForCourse(category, title string) []Question {
	if bank, ok := Banks[category]; ok {
		return bank
	}

	lower := strings.ToLower(title)
	for _, rule := range keywordRules {
		if !strings.Contains(lower, rule.keyword) {
			continue
		}
		if rule.exclude != "" && strings.Contains(lower, rule.exclude) {
			continue
		}
		return Banks[rule.bank]
	}

	return Banks["Default"]
}

// Grade counts submitted answers that match the key. Unanswered or
// unknown question ids score zero.
func Grade(questions []Question, answers map[int]string) int {
	score := 0
	for _, q := range questions {
		if answers[q.ID] == q.Answer {
			score++
		}
	}
	return score
}
