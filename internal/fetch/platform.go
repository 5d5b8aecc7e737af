package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board or applicant tracking system.
type Platform string

// Known platforms
const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformICIMS           Platform = "icims"
	PlatformSuccessFactors  Platform = "successfactors"
	PlatformRigzone         Platform = "rigzone"
	PlatformEnergyJobSearch Platform = "energyjobsearch"
	PlatformUnknown         Platform = "unknown"
)

var platformHosts = []struct {
	platform Platform
	hosts    []string
}{
	{PlatformGreenhouse, []string{"greenhouse.io"}},
	{PlatformLever, []string{"lever.co"}},
	{PlatformWorkday, []string{"workday.com", "myworkdayjobs.com"}},
	{PlatformICIMS, []string{"icims.com"}},
	{PlatformSuccessFactors, []string{"successfactors.com", "successfactors.eu", "jobs.sap.com"}},
	{PlatformRigzone, []string{"rigzone.com"}},
	{PlatformEnergyJobSearch, []string{"energyjobsearch.com"}},
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, p := range platformHosts {
		for _, h := range p.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return p.platform
			}
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a platform, most
// specific first.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"}
	case PlatformLever:
		return []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"}
	case PlatformWorkday:
		return []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"}
	case PlatformICIMS:
		return []string{".iCIMS_JobContent", ".iCIMS_InfoMsg_Job", "#iCIMS_Content"}
	case PlatformSuccessFactors:
		return []string{".jobDisplay", "[itemprop='description']", ".job"}
	case PlatformRigzone:
		return []string{".job-details", ".jobDetails", "article"}
	case PlatformEnergyJobSearch:
		return []string{".job-description", "#job-description", "article"}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns elements to drop before extraction.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal
		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",
		".self-identification",

		// Sharing and consent
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",

		// Similar-job carousels repeat other titles
		".similar-jobs",
		".related-jobs",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".lever-application-form", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	case PlatformICIMS:
		return append(common, ".iCIMS_Header", ".iCIMS_Footer", ".iCIMS_JobOptions")
	case PlatformRigzone:
		return append(common, ".job-alert", ".featured-jobs")
	default:
		return common
	}
}
