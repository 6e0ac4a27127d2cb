package diagnosis

type IssueKind string

const (
	IssueInterference IssueKind = "interference"
	IssueCoverage     IssueKind = "coverage"
	IssueCongestion   IssueKind = "congestion"
	IssueNormal       IssueKind = "normal"
)

// IssueType carries the Arabic label shown to users next to the English explanation.
type IssueType struct {
	Type        IssueKind `json:"type"`
	Label       string    `json:"label"`
	Explanation string    `json:"explanation"`
}

var issueTypes = map[IssueKind]IssueType{
	IssueInterference: {
		Type:        IssueInterference,
		Label:       "تداخل في الإشارة",
		Explanation: "The signal is strong but other towers are interfering with it.",
	},
	IssueCoverage: {
		Type:        IssueCoverage,
		Label:       "مشكلة تغطية",
		Explanation: "The signal is weak because you are far from the tower.",
	},
	IssueCongestion: {
		Type:        IssueCongestion,
		Label:       "ازدحام على البرج",
		Explanation: "The signal is good but the tower is congested.",
	},
	IssueNormal: {
		Type:        IssueNormal,
		Label:       "طبيعي",
		Explanation: "Values are within the normal range.",
	},
}

func IssueTypeOf(kind IssueKind) IssueType {
	return issueTypes[kind]
}

// DetectIssue applies the rules in priority order; the first match wins.
func DetectIssue(rsrp, sinr int, download *float64) IssueType {
	switch {
	case rsrp > -95 && sinr < 5:
		return issueTypes[IssueInterference]
	case rsrp < -105:
		return issueTypes[IssueCoverage]
	case download != nil && *download < 5 && rsrp > -90 && sinr > 10:
		return issueTypes[IssueCongestion]
	default:
		return issueTypes[IssueNormal]
	}
}
