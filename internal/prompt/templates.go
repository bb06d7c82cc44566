package prompt

// Template ids. Wording below is content, not logic: edit freely without
// touching the rendering or request code.
const (
	ABTest         = "ab_test"
	MarketResearch = "market_research"
)

const abTestTemplate = `Analyze this A/B test and determine statistical significance:

Control group: {control_users} users, {control_conversions} conversions ({control_rate}% conversion rate)
Treatment group: {treatment_users} users, {treatment_conversions} conversions ({treatment_rate}% conversion rate)

Run a two-proportion z-test and show every calculation step transparently.
Report the z-score, the p-value, and whether the difference is significant at
the 95% confidence level. Include the absolute and relative lift of the
treatment over the control, and finish with a plain-language recommendation
on whether to ship the treatment.`

const marketResearchTemplate = `Research the following topic using current web data: {research_topic}

Provide specific numbers, benchmarks, and trends with proper source
citations. Prefer the most recent figures available and state the year each
figure refers to. Close with a short list of key takeaways.`

func init() {
	register(ABTest, abTestTemplate)
	register(MarketResearch, marketResearchTemplate)
}

// ResearchExample is a canned research prompt surfaced to the UI.
type ResearchExample struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
}

// Examples returns the built-in research starting points.
func Examples() []ResearchExample {
	return []ResearchExample{
		{
			ID:    "mobile_retention",
			Topic: "What are mobile app retention rates by industry in 2024? Include fintech, gaming, and e-commerce benchmarks with day 1, day 7, and day 30 retention rates.",
		},
		{
			ID:    "ecommerce_conversion",
			Topic: "E-commerce conversion rate benchmarks by device type and industry for 2024. Include average order values and cart abandonment rates.",
		},
		{
			ID:    "saas_pricing",
			Topic: "Current SaaS pricing trends for B2B software in 2024. Include average price per seat, conversion rates by company size, and freemium vs paid model performance.",
		},
		{
			ID:    "email_marketing",
			Topic: "Email marketing benchmarks 2024: open rates, click rates, and conversion rates by industry. Include data for B2B vs B2C and mobile vs desktop performance.",
		},
	}
}
