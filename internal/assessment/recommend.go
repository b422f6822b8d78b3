package assessment

// MaxRecommendations is how many entries a visitor is shown.
const MaxRecommendations = 4

// The recommendation bands (30/60/80) do not line up with the level bands
// (25/50/75): a score of 28 is Developing but gets foundation advice.
var (
	foundationRecommendations = []string{
		"Start with data collection and organization initiatives",
		"Implement simple automation for repetitive tasks",
		"Invest in AI fundamentals training for leadership and staff",
		"Establish data governance policies and practices",
		"Identify quick-win use cases with measurable outcomes",
	}
	pilotingRecommendations = []string{
		"Launch AI pilot projects in high-impact business areas",
		"Develop a comprehensive AI strategy and roadmap",
		"Strengthen data infrastructure and integration",
		"Build internal AI talent and capabilities",
		"Define success metrics for every pilot before it starts",
	}
	scalingRecommendations = []string{
		"Scale successful AI pilots across the organization",
		"Implement advanced machine learning models",
		"Establish an AI ethics and governance framework",
		"Create AI centers of excellence",
		"Automate model monitoring and retraining",
	}
	leadingRecommendations = []string{
		"Pioneer industry-leading AI innovations",
		"Develop proprietary AI models and capabilities",
		"Build AI partnerships and ecosystems",
		"Drive AI-powered business transformation",
		"Share AI thought leadership across your industry",
	}
)

// Recommend returns the first MaxRecommendations entries of the bucket for
// the given score. The returned slice is a fresh copy.
func Recommend(score float64) []string {
	var bucket []string
	switch {
	case score < 30:
		bucket = foundationRecommendations
	case score < 60:
		bucket = pilotingRecommendations
	case score < 80:
		bucket = scalingRecommendations
	default:
		bucket = leadingRecommendations
	}
	n := MaxRecommendations
	if len(bucket) < n {
		n = len(bucket)
	}
	out := make([]string, n)
	copy(out, bucket[:n])
	return out
}
