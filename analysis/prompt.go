package analysis

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/articlecheck"
)

// DefaultContentLimit is the number of body runes embedded in a prompt.
const DefaultContentLimit = 4000

// ReferenceDateLayout is how the factual prompt renders the current date.
const ReferenceDateLayout = "January 2, 2006"

// System instructions sent alongside each prompt.
const (
	SEOSystemPrompt     = "You are an expert SEO analyst who provides detailed, actionable feedback with authoritative sources."
	FactualSystemPrompt = "You are an expert fact-checker who provides accurate corrections with authoritative sources. You are thorough but fair in your assessments."
)

const seoPromptTemplate = `You are an expert SEO analyst. Analyze the following article for SEO optimization.

Article Title: %s
Article URL: %s
Article Content:
%s

Provide a comprehensive SEO analysis with:
1. An overall SEO score from 0 to 100
2. A list of specific, actionable improvement suggestions (if any)
3. For each suggestion, provide at least one authoritative source link (real URLs from Google SEO guidelines, Moz, Search Engine Journal, etc.)

Consider these SEO factors:
- Title optimization (length, keywords, clarity)
- Content structure (headings, paragraphs)
- Keyword usage and density
- Meta description potential
- Content length and depth
- Internal/external linking opportunities
- Readability and user experience
- Mobile optimization considerations
- Image optimization (alt text mentions)

Return your response in the following JSON format:
{
  "score": <number from 0-100>,
  "suggestions": [
    {
      "issue": "<what's wrong>",
      "suggestion": "<specific actionable fix>",
      "sources": ["<authoritative URL 1>", "<authoritative URL 2>"]
    }
  ]
}

If the article is already well-optimized (score 95+), return an empty suggestions array.
Ensure all source URLs are real and relevant.`

const factualPromptTemplate = `You are an expert fact-checker and researcher. Analyze the following article for factual accuracy and currency of information.

Article Title: %s
Article URL: %s
Published Date: %s
Article Content:
%s

Provide a comprehensive fact-checking analysis with:
1. An overall factual accuracy score from 0 to 100
2. A list of specific claims that are incorrect, outdated, or require verification
3. For each issue, provide the correction and at least one authoritative source link (real URLs from academic sources, government websites, reputable news organizations, etc.)

Consider these factors:
- Factual claims and statistics
- Outdated information (especially for technology, science, regulations)
- Misleading statements or context
- Missing important disclaimers
- Verifiability of claims
- Source credibility

Return your response in the following JSON format:
{
  "score": <number from 0-100>,
  "suggestions": [
    {
      "claim": "<the problematic claim from the article>",
      "issue": "<what's wrong with it>",
      "correction": "<the accurate information>",
      "sources": ["<authoritative URL 1>", "<authoritative URL 2>"]
    }
  ]
}

If the article is factually accurate and up-to-date (score 95+), return an empty suggestions array.
Ensure all source URLs are real, authoritative, and directly relevant to the correction.
Today's date is %s - consider this when checking if information is current.`

// BuildSEOPrompt renders the SEO prompt for article.
// At most limit runes of the body are included.
func BuildSEOPrompt(article *articlecheck.Article, limit int) string {
	return fmt.Sprintf(seoPromptTemplate,
		article.Title,
		article.URL,
		Truncate(article.Content, limit),
	)
}

// BuildFactualPrompt renders the factual-accuracy prompt for article, using
// today as the reference point for judging whether information is current.
func BuildFactualPrompt(article *articlecheck.Article, limit int, today time.Time) string {
	published := article.PublishedDate
	if published == "" {
		published = "Unknown"
	}
	return fmt.Sprintf(factualPromptTemplate,
		article.Title,
		article.URL,
		published,
		Truncate(article.Content, limit),
		today.Format(ReferenceDateLayout),
	)
}

// Truncate returns the first limit runes of s.
// A non-positive limit returns s unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
