package nlp

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed skills.txt
var defaultSkillsText string

var (
	datePattern = regexp.MustCompile(`(?i)\b(?:(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(?:19|20)\d{2}|(?:19|20)\d{2}|\d+\+?\s+(?:years?|months?))\b`)

	// Organization names never span lines, so words are joined by blanks only.
	educationOrgPattern = regexp.MustCompile(`(?:[A-Z][\w&'.-]*[ \t]+){0,3}(?:University|College|Institute|Academy|Polytechnic)\b(?:[ \t]+of(?:[ \t]+the)?(?:[ \t]+[A-Z][\w&'.-]*){1,4})?`)

	companyOrgPattern = regexp.MustCompile(`(?:[A-Z][\w&'.-]*[ \t]+){1,3}(?:Inc|Corp|Corporation|LLC|Ltd|Limited|GmbH)\b\.?`)
)

// orgLeadWords are capitalized words that commonly precede an organization
// name without being part of it.
var orgLeadWords = map[string]struct{}{
	"bachelor": {}, "bachelors": {}, "bachelor's": {}, "master": {}, "masters": {}, "master's": {},
	"degree": {}, "bs": {}, "ba": {}, "ms": {}, "ma": {}, "phd": {}, "mba": {}, "b.s.": {}, "m.s.": {},
	"graduated": {}, "graduate": {}, "attended": {}, "studied": {}, "worked": {}, "joined": {},
	// resume section headings
	"education": {}, "experience": {}, "employment": {}, "work": {}, "history": {}, "skills": {},
	"summary": {}, "profile": {}, "projects": {}, "academic": {}, "background": {},
	"qualifications": {}, "certifications": {},
}

// span is a recognized entity with its byte offsets, used for ordering.
type span struct {
	start, end int
	label      Label
}

// RuleRecognizer recognizes SKILL entities from a gazetteer, DATE entities from
// date and duration patterns, and ORG entities from institution and company
// name patterns.
type RuleRecognizer struct {
	skills []string // lower-cased, longest first
}

// NewRuleRecognizer builds a recognizer over the built-in skill gazetteer plus
// any extra skills supplied.
func NewRuleRecognizer(extraSkills ...string) *RuleRecognizer {
	seen := make(map[string]struct{})
	var skills []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || strings.HasPrefix(s, "#") {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	for _, line := range strings.Split(defaultSkillsText, "\n") {
		add(line)
	}
	for _, s := range extraSkills {
		add(s)
	}
	sort.SliceStable(skills, func(i, j int) bool { return len(skills[i]) > len(skills[j]) })

	return &RuleRecognizer{skills: skills}
}

// Entities returns the entities found in text, ordered by position.
func (r *RuleRecognizer) Entities(text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	spans := r.skillSpans(text)
	for _, loc := range datePattern.FindAllStringIndex(text, -1) {
		spans = append(spans, span{start: loc[0], end: loc[1], label: LabelDate})
	}
	spans = append(spans, orgSpans(text, educationOrgPattern)...)
	spans = append(spans, orgSpans(text, companyOrgPattern)...)

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	entities := make([]Entity, 0, len(spans))
	for _, s := range spans {
		entities = append(entities, Entity{Text: text[s.start:s.end], Label: s.label})
	}
	return entities
}

// skillSpans scans word starts for the longest gazetteer entry that ends on a
// word boundary.
func (r *RuleRecognizer) skillSpans(text string) []span {
	var spans []span

	for i := 0; i < len(text); {
		if i > 0 && isSkillRune(lastRune(text[:i])) {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		matched := 0
		for _, skill := range r.skills {
			end := i + len(skill)
			if end > len(text) || !strings.EqualFold(text[i:end], skill) {
				continue
			}
			if end < len(text) {
				next, _ := utf8.DecodeRuneInString(text[end:])
				if isSkillRune(next) {
					continue
				}
			}
			matched = len(skill)
			break
		}
		if matched > 0 {
			spans = append(spans, span{start: i, end: i + matched, label: LabelSkill})
			i += matched
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}

	return spans
}

func orgSpans(text string, pattern *regexp.Regexp) []span {
	var spans []span
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		// Drop leading stop words and degree words ("Graduated", "The").
		for {
			word, rest := leadingWord(text[start:end])
			if rest == "" {
				break
			}
			lw := strings.ToLower(word)
			_, lead := orgLeadWords[lw]
			if !lead && !IsStopWord(lw) && !isHeading(word) {
				break
			}
			start = end - len(rest)
		}
		spans = append(spans, span{start: start, end: end, label: LabelOrg})
	}
	return spans
}

// leadingWord splits s into its first whitespace-delimited word and the
// remainder with leading whitespace removed. rest is empty when s is one word.
func leadingWord(s string) (word, rest string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
}

// isHeading reports whether word is an all-caps word long enough not to be an
// acronym such as "MIT" or "UCLA".
func isHeading(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 5
}

func isSkillRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '_'
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
