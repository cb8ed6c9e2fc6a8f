package logic

import (
	"filegrid/internal/config"
	"filegrid/internal/domain"
)

// DisableWhen builds the row-disable predicate for rule. Rows are disabled
// when the rule's field differs from NotEquals. An empty field disables
// nothing.
func DisableWhen(rule config.DisableRule) domain.DisablePredicate {
	if rule.Field == "" {
		return func(domain.Row) bool { return false }
	}
	get := MatchField(rule.Field)
	return func(row domain.Row) bool {
		return get(row) != rule.NotEquals
	}
}

// DisabledRows evaluates pred for every row
func DisabledRows(rows []domain.Row, pred domain.DisablePredicate) []bool {
	out := make([]bool, len(rows))
	if pred == nil {
		return out
	}
	for i, row := range rows {
		out[i] = pred(row)
	}
	return out
}

// FilterEnabled drops disabled rows from a reported selection
func FilterEnabled(selected []int, disabled []bool) []int {
	out := make([]int, 0, len(selected))
	for _, i := range selected {
		if i >= 0 && i < len(disabled) && disabled[i] {
			continue
		}
		out = append(out, i)
	}
	return out
}
