// seed_content.go — standalone script to write starter catalog and compare
// registry files for a fresh Toolscout deployment.
//
// Usage:
//
//	go run scripts/seed_content.go -out content
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
)

type tool struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Blurb        string   `json:"blurb"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	Badges       []string `json:"badges,omitempty"`
	PricingNote  string   `json:"pricing_note"`
	AffiliateURL string   `json:"affiliate_url,omitempty"`
}

type pair struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases,omitempty"`
}

func main() {
	outDir := flag.String("out", "content", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	tools := []tool{
		{Slug: "jasper", Name: "Jasper", Category: "AI Writing",
			Blurb:  "AI writing assistant for marketing copy, blog articles and briefs.",
			Pros:   []string{"Strong brand-voice controls", "Fast long-form drafts"},
			Cons:   []string{"Pricey for solo writers"},
			Badges: []string{"Editor's Pick"}, PricingNote: "Free trial, from $39/mo",
			AffiliateURL: "https://example.com/go/jasper"},
		{Slug: "copy-ai", Name: "Copy.ai", Category: "AI Writing",
			Blurb: "Content and copy generation with workflow automation.",
			Pros:  []string{"Generous free tier"}, Cons: []string{"Quality varies on long form"},
			PricingNote:  "Free plan available",
			AffiliateURL: "https://example.com/go/copy-ai"},
		{Slug: "heygen", Name: "HeyGen", Category: "AI Video",
			Blurb:  "Avatar video creation from a script, no studio or editing required.",
			Pros:   []string{"Realistic avatars", "Fast turnaround"},
			Cons:   []string{"Limited footage control"},
			Badges: []string{"Best for Video"}, PricingNote: "Free watermark plan, from $24/mo",
			AffiliateURL: "https://example.com/go/heygen"},
		{Slug: "synthesia", Name: "Synthesia", Category: "AI Video",
			Blurb: "Enterprise-grade AI video with avatars and translation.",
			Pros:  []string{"Broad language support"}, Cons: []string{"No free tier"},
			PricingNote:  "From $29/mo, enterprise plans",
			AffiliateURL: "https://example.com/go/synthesia"},
		{Slug: "apollo", Name: "Apollo", Category: "Lead Generation",
			Blurb:  "B2B contacts database with intent data, sequences and enrichment.",
			Pros:   []string{"Huge database", "Built-in outreach sequences"},
			Cons:   []string{"Data accuracy varies by region"},
			Badges: []string{"Best Database"}, PricingNote: "Free tier, from $49/mo",
			AffiliateURL: "https://example.com/go/apollo"},
		{Slug: "zoominfo", Name: "ZoomInfo", Category: "Data Enrichment",
			Blurb: "Enterprise contact and company data platform with intent signals.",
			Pros:  []string{"Deep firmographic data"}, Cons: []string{"Opaque enterprise pricing"},
			PricingNote:  "Enterprise pricing, annual contracts",
			AffiliateURL: "https://example.com/go/zoominfo"},
		{Slug: "clay", Name: "Clay", Category: "Data Enrichment",
			Blurb:  "Spreadsheet-style enrichment workflows over dozens of data providers.",
			Pros:   []string{"Waterfall enrichment", "Automation-friendly"},
			Cons:   []string{"Steep learning curve"},
			Badges: []string{"Most Integrations"}, PricingNote: "Free tier, from $149/mo",
			AffiliateURL: "https://example.com/go/clay"},
		{Slug: "instantly", Name: "Instantly", Category: "Outbound",
			Blurb:  "Cold email sending at scale with mailbox rotation and warmup.",
			Pros:   []string{"Unlimited sending accounts", "Strong deliverability tooling"},
			Cons:   []string{"Thin CRM features"},
			Badges: []string{"Best for Outreach"}, PricingNote: "From $37/mo",
			AffiliateURL: "https://example.com/go/instantly"},
		{Slug: "smartlead", Name: "Smartlead", Category: "Outbound",
			Blurb: "Cold outreach campaigns with unified inbox and email warmup.",
			Pros:  []string{"Good API"}, Cons: []string{"UI rough edges"},
			PricingNote:  "From $39/mo",
			AffiliateURL: "https://example.com/go/smartlead"},
		{Slug: "hubspot", Name: "HubSpot", Category: "CRM",
			Blurb:  "All-in-one CRM with marketing, sales and service hubs.",
			Pros:   []string{"Free CRM core", "Deep ecosystem"},
			Cons:   []string{"Hubs get expensive fast"},
			Badges: []string{"Best for Teams"}, PricingNote: "Free CRM, paid hubs from $20/mo",
			AffiliateURL: "https://example.com/go/hubspot"},
		{Slug: "zapier", Name: "Zapier", Category: "Automation",
			Blurb:  "No-code workflow automation connecting thousands of apps.",
			Pros:   []string{"Largest integration catalog"},
			Cons:   []string{"Task pricing adds up"},
			Badges: []string{"No-Code", "Most Integrations"}, PricingNote: "Free plan, from $19.99/mo",
			AffiliateURL: "https://example.com/go/zapier"},
	}

	pairs := []pair{
		{Canonical: "apollo-vs-zoominfo", Aliases: []string{"zoominfo-vs-apollo"}},
		{Canonical: "apollo-vs-clay", Aliases: []string{"clay-vs-apollo"}},
		{Canonical: "jasper-vs-copy-ai", Aliases: []string{"copy-ai-vs-jasper"}},
		{Canonical: "heygen-vs-synthesia", Aliases: []string{"synthesia-vs-heygen"}},
		{Canonical: "instantly-vs-smartlead", Aliases: []string{"smartlead-vs-instantly"}},
	}

	write(filepath.Join(*outDir, "tools.json"), tools)
	write(filepath.Join(*outDir, "compares.json"), pairs)
}

func write(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}
