// Package vocab provides the shared skill vocabulary used by both the job
// description and resume extractors. The vocabulary is built once at process
// start and is read-only afterwards, so it is safe for concurrent use.
package vocab

import (
	"regexp"
	"strings"
)

// Category groups related skill terms. Categories are informational; matching
// always runs against the flat vocabulary.
type Category string

const (
	CategoryLanguages Category = "programming_languages"
	CategoryWeb       Category = "web_development"
	CategoryDatabases Category = "databases"
	CategoryCloud     Category = "cloud_platforms"
	CategoryDevOps    Category = "devops"
	CategoryData      Category = "data_science"
	CategoryTooling   Category = "tooling"
)

// categorizedSkills declares the vocabulary in a fixed order. The slice order
// is the canonical output order for extraction, so tests can rely on it.
var categorizedSkills = []struct {
	category Category
	terms    []string
}{
	{CategoryLanguages, []string{
		"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "php",
		"typescript", "kotlin", "swift", "scala", "perl", "sql", "nosql", "bash", "r", "matlab",
	}},
	{CategoryWeb, []string{
		"html", "css", "react", "angular", "vue.js", "node.js", "express.js", "django",
		"flask", "spring", "asp.net", "jquery", "bootstrap", "sass", "laravel",
		"redux", "webpack", "babel", "graphql", "rest api", "responsive design",
		"mobile development",
	}},
	{CategoryDatabases, []string{
		"mysql", "postgresql", "mongodb", "sqlite", "oracle", "sql server", "redis",
		"dynamodb", "cassandra", "mariadb", "elasticsearch", "neo4j",
	}},
	{CategoryCloud, []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "firebase",
		"cloudflare", "vercel", "netlify",
	}},
	{CategoryDevOps, []string{
		"docker", "kubernetes", "jenkins", "terraform", "ansible", "gitlab ci",
		"github actions", "circleci", "prometheus", "grafana", "ci/cd",
	}},
	{CategoryData, []string{
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"machine learning", "deep learning", "data science", "big data", "nlp",
		"hadoop", "spark", "kafka", "tableau", "power bi", "statistics",
		"computer vision", "data mining", "ai",
	}},
	{CategoryTooling, []string{
		"git", "agile", "scrum", "jira", "excel", "powerpoint", "word",
	}},
}

// Vocabulary is an immutable table of known skill terms with precompiled
// whole-word match patterns.
type Vocabulary struct {
	terms      []string
	categories map[string]Category
	patterns   map[string]*regexp.Regexp
}

// defaultVocab is built once at init and shared process-wide.
var defaultVocab = build()

// Default returns the shared skill vocabulary.
func Default() *Vocabulary {
	return defaultVocab
}

func build() *Vocabulary {
	v := &Vocabulary{
		categories: make(map[string]Category),
		patterns:   make(map[string]*regexp.Regexp),
	}
	for _, group := range categorizedSkills {
		for _, term := range group.terms {
			canonical := strings.ToLower(term)
			if _, exists := v.patterns[canonical]; exists {
				continue
			}
			v.terms = append(v.terms, canonical)
			v.categories[canonical] = group.category
			v.patterns[canonical] = wholeWordPattern(canonical)
		}
	}
	return v
}

// wholeWordPattern compiles a case-insensitive whole-word pattern for a term.
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Terms returns the canonical vocabulary terms in declaration order. The
// returned slice is a copy.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Contains reports whether the given term (any case) is in the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.patterns[strings.ToLower(term)]
	return ok
}

// CategoryOf returns the category for a canonical term, or "" if unknown.
func (v *Vocabulary) CategoryOf(term string) Category {
	return v.categories[strings.ToLower(term)]
}

// Match reports whether the term occurs as a whole word anywhere in text.
func (v *Vocabulary) Match(term, text string) bool {
	pattern, ok := v.patterns[strings.ToLower(term)]
	if !ok {
		return false
	}
	return pattern.MatchString(text)
}

// CountOccurrences returns the number of whole-word occurrences of term in text.
func (v *Vocabulary) CountOccurrences(term, text string) int {
	pattern, ok := v.patterns[strings.ToLower(term)]
	if !ok {
		return 0
	}
	return len(pattern.FindAllStringIndex(text, -1))
}

// ExtractSkills returns the canonical vocabulary terms that occur as whole
// words in text. Output order follows vocabulary declaration order and is
// deterministic; results are deduplicated by construction.
func (v *Vocabulary) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	found := make([]string, 0)
	for _, term := range v.terms {
		if v.patterns[term].MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}
