package events

const (
	SubjectSiteStats = "site.stats"

	StreamName   = "SITE_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectQuizScored(submissionID string) string { return "site.quiz." + submissionID + ".scored" }
func SubjectAffiliateClick(toolSlug string) string { return "site.click." + toolSlug }
func SubjectCompareMiss() string                   { return "site.compare.miss" }
