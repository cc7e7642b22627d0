package domain

import "strings"

type RuleStatus string

const (
	RuleStatusPending   RuleStatus = "pending"
	RuleStatusCompleted RuleStatus = "completed"
	RuleStatusUnknown   RuleStatus = "unknown"
)

func ParseRuleStatus(raw string) RuleStatus {
	switch RuleStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case RuleStatusPending:
		return RuleStatusPending
	case RuleStatusCompleted:
		return RuleStatusCompleted
	default:
		return RuleStatusUnknown
	}
}

type TaskRule struct {
	ID     string
	Name   string
	Status RuleStatus
}

// FindRuleStatus returns the status of ruleID, or RuleStatusUnknown when absent.
func FindRuleStatus(rules []TaskRule, ruleID string) RuleStatus {
	for _, rule := range rules {
		if rule.ID == ruleID {
			return rule.Status
		}
	}
	return RuleStatusUnknown
}

type Post struct {
	ID  string
	URL string
}
