package fetch

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/types"
)

// SectionKind classifies a posting section by its heading.
type SectionKind string

// Section kinds
const (
	SectionRequired  SectionKind = "required"
	SectionPreferred SectionKind = "preferred"
	SectionOther     SectionKind = "other"
)

const (
	maxHeadingLength = 80
	maxBulletLength  = 160
	// Bold or paragraph text this short ends a skills section ("Benefits")
	maxResetWords = 3
)

var (
	preferredHeading = regexp.MustCompile(`(?i)\b(preferred|nice[\s-]to[\s-]have|bonus|desired|a plus|pluses|desirable)\b`)
	requiredHeading  = regexp.MustCompile(`(?i)\b(skills|qualifications|requirements|required|must[\s-]haves?|competenc(y|ies)|what you.?ll (need|bring)|what we.?re looking for|who you are|knowledge|abilities|experience)\b`)
	titleSuffix      = regexp.MustCompile(`\s+[|\-–]\s+[^|\-–]+$`)
)

// SkillBullets holds the list items found under skill-like headings.
type SkillBullets struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// ClassifyHeading maps heading text to the kind of list that follows it.
// Preferred wins over required ("Preferred Qualifications").
func ClassifyHeading(text string) SectionKind {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxHeadingLength {
		return SectionOther
	}
	switch {
	case preferredHeading.MatchString(text):
		return SectionPreferred
	case requiredHeading.MatchString(text):
		return SectionRequired
	default:
		return SectionOther
	}
}

// ExtractTitle returns the posting title: the first <h1> outside the page
// header, then og:title, then <title> without a trailing " | Site" part.
func ExtractTitle(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	return titleOf(doc), nil
}

// ExtractSkillBullets collects list items that follow skill, qualification
// or requirement headings, in document order. Items under other headings
// are ignored.
func ExtractSkillBullets(html string) (SkillBullets, error) {
	doc, err := parse(html)
	if err != nil {
		return SkillBullets{}, err
	}
	return skillBulletsOf(doc.Selection), nil
}

func titleOf(doc *goquery.Document) string {
	h1 := doc.Find("h1").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("header, nav").Length() == 0
	}).First()
	if h1 := strings.Join(strings.Fields(h1.Text()), " "); h1 != "" {
		return h1
	}
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	title := strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	return titleSuffix.ReplaceAllString(title, "")
}

func skillBulletsOf(root *goquery.Selection) SkillBullets {
	out := SkillBullets{Required: []string{}, Preferred: []string{}}
	current := SectionOther

	root.Find("h1, h2, h3, h4, h5, h6, strong, b, p, li").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if name != "li" {
			// Emphasis inside a list item is part of the item
			if s.ParentsFiltered("li").Length() > 0 {
				return
			}
			text := strings.TrimRight(strings.Join(strings.Fields(s.Text()), " "), ":")
			if text == "" {
				return
			}
			kind := ClassifyHeading(text)
			if strings.HasPrefix(name, "h") || kind != SectionOther || len(strings.Fields(text)) <= maxResetWords {
				current = kind
			}
			return
		}

		if current == SectionOther {
			return
		}
		item := s.Clone()
		item.Find("ul, ol").Remove()
		text := cleanBullet(item.Text())
		if text == "" || len(text) > maxBulletLength {
			return
		}
		if current == SectionPreferred {
			out.Preferred = append(out.Preferred, text)
		} else {
			out.Required = append(out.Required, text)
		}
	})
	return out
}

// ScrapeOptions configures Scrape.
type ScrapeOptions struct {
	Fetch      *Options
	UseBrowser bool
	Timeout    time.Duration
}

// Scrape fetches a posting page and builds a JobPosting with its title,
// description text and raw skill bullets. With UseBrowser it re-renders
// pages whose server HTML holds too little text.
func Scrape(ctx context.Context, urlStr string, opts ScrapeOptions) (*types.JobPosting, error) {
	platform := DetectPlatform(urlStr)

	result, err := URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	text, err := ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		rendered, berr := WithBrowser(ctx, urlStr, opts.Timeout)
		if berr != nil {
			logger.Warn().Str("url", urlStr).Err(berr).Msg("browser rendering failed, using HTTP content")
		} else if renderedText, terr := ExtractMainText(rendered, contentSelectors, noiseSelectors...); terr == nil {
			html, text = rendered, renderedText
		}
	}
	logger.Debug().
		Str("url", urlStr).
		Str("platform", string(platform)).
		Int("text_chars", len(text)).
		Msg("extracted posting text")

	return postingFromHTML(urlStr, platform, html, text)
}

func postingFromHTML(urlStr string, platform Platform, html, text string) (*types.JobPosting, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	title := titleOf(doc)
	company, _ := doc.Find("meta[property='og:site_name']").Attr("content")
	bullets := skillBulletsOf(mainContent(doc, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)))

	source := string(platform)
	if platform == PlatformUnknown {
		if u, err := url.Parse(urlStr); err == nil {
			source = u.Hostname()
		}
	}

	return &types.JobPosting{
		URL:             urlStr,
		Title:           title,
		Company:         strings.TrimSpace(company),
		Description:     text,
		RequiredSkills:  bullets.Required,
		PreferredSkills: bullets.Preferred,
		Source:          source,
	}, nil
}
