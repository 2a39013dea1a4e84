package quiz

// Answer is one choice within a question. Weights only list the dimensions
// the answer affects; absent dimensions contribute 0.
type Answer struct {
	Label   string            `json:"label"`
	Weights map[Dimension]int `json:"weights"`
}

// Question is one step of the fixed questionnaire.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Answers []Answer `json:"answers"`
}

// Bank is the ordered question list presented to the user. The content is the
// implicit version: changing it changes scoring behavior.
type Bank []Question

// DefaultBank returns the built-in questionnaire. Deployments can override it
// with a JSON file via config.
func DefaultBank() Bank {
	return Bank{
		{
			ID:     "primary-goal",
			Prompt: "What's the main thing you want AI to help with?",
			Answers: []Answer{
				{Label: "Producing written content faster", Weights: map[Dimension]int{DimWriting: 3}},
				{Label: "Creating video without a studio", Weights: map[Dimension]int{DimVideo: 3}},
				{Label: "Booking more outbound meetings", Weights: map[Dimension]int{DimOutbound: 3, DimData: 1}},
				{Label: "Finding and enriching leads", Weights: map[Dimension]int{DimData: 3}},
				{Label: "Keeping my pipeline organized", Weights: map[Dimension]int{DimCRM: 3}},
				{Label: "Connecting the tools I already use", Weights: map[Dimension]int{DimAutomation: 3}},
			},
		},
		{
			ID:     "team-size",
			Prompt: "How big is the team that will use it?",
			Answers: []Answer{
				{Label: "Just me", Weights: map[Dimension]int{DimWriting: 1, DimAutomation: 1}},
				{Label: "2-10 people", Weights: map[Dimension]int{DimCRM: 1, DimOutbound: 1}},
				{Label: "11-50 people", Weights: map[Dimension]int{DimCRM: 2, DimData: 1}},
				{Label: "50+ people", Weights: map[Dimension]int{DimData: 2, DimCRM: 1}},
			},
		},
		{
			ID:     "channel",
			Prompt: "Which channel matters most to you right now?",
			Answers: []Answer{
				{Label: "Blog and organic search", Weights: map[Dimension]int{DimWriting: 2}},
				{Label: "Social video", Weights: map[Dimension]int{DimVideo: 2}},
				{Label: "Cold email", Weights: map[Dimension]int{DimOutbound: 2, DimData: 1}},
				{Label: "Paid plus retargeting", Weights: map[Dimension]int{DimData: 2}},
			},
		},
		{
			ID:     "workflow",
			Prompt: "How much of your workflow should run on autopilot?",
			Answers: []Answer{
				{Label: "I want to stay hands-on", Weights: map[Dimension]int{DimWriting: 1}},
				{Label: "Automate the repetitive parts", Weights: map[Dimension]int{DimAutomation: 2}},
				{Label: "As much as possible, end to end", Weights: map[Dimension]int{DimAutomation: 3, DimOutbound: 1}},
			},
		},
		{
			ID:     "data-appetite",
			Prompt: "How important is contact and company data to your motion?",
			Answers: []Answer{
				{Label: "Not very, I work inbound", Weights: map[Dimension]int{DimWriting: 1, DimCRM: 1}},
				{Label: "Useful but not central", Weights: map[Dimension]int{DimData: 1, DimOutbound: 1}},
				{Label: "It's the backbone of everything we do", Weights: map[Dimension]int{DimData: 3, DimOutbound: 1}},
			},
		},
	}
}

// Validate checks the structural invariant that every question has at least
// one answer and no answer carries a negative weight.
func (b Bank) Validate() error {
	for i, q := range b {
		if len(q.Answers) == 0 {
			return &BankError{Index: i, ID: q.ID, Reason: "question has no answers"}
		}
		for _, a := range q.Answers {
			for d, w := range a.Weights {
				if w < 0 {
					return &BankError{Index: i, ID: q.ID, Reason: "negative weight for " + string(d)}
				}
			}
		}
	}
	return nil
}

// BankError reports a malformed question bank.
type BankError struct {
	Index  int
	ID     string
	Reason string
}

func (e *BankError) Error() string {
	return "question bank: " + e.ID + ": " + e.Reason
}
