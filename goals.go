package wealthsense

import (
	"errors"
	"fmt"
)

// CategoryGoal is a monthly spending budget for one category.
// It is matched to transactions purely by category-string equality.
type CategoryGoal struct {
	Category     string `json:"category"`
	MonthlyLimit Money  `json:"monthlyLimit"`
}

// Validate checks the category goal fields.
func (g CategoryGoal) Validate() error {
	if g.Category == "" {
		return errors.New("goal category is missing")
	}
	if !g.MonthlyLimit.IsPositive() {
		return fmt.Errorf("goal monthly limit must be positive, got %s", g.MonthlyLimit)
	}
	return nil
}

// SavingsGoal is a named saving target. CurrentAmount only moves through
// an explicit add-funds action.
type SavingsGoal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  Money  `json:"targetAmount"`
	CurrentAmount Money  `json:"currentAmount"`
	Deadline      Date   `json:"deadline"`
	Color         string `json:"color,omitempty"`
}

// NewSavingsGoal creates a savings goal with a fresh id.
func NewSavingsGoal(name string, target Money, deadline Date) SavingsGoal {
	return SavingsGoal{
		ID:           newID("sg"),
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
	}
}

// Validate checks the savings goal fields.
func (s SavingsGoal) Validate() error {
	if s.Name == "" {
		return errors.New("savings goal name is missing")
	}
	if !s.TargetAmount.IsPositive() {
		return fmt.Errorf("savings goal target must be positive, got %s", s.TargetAmount)
	}
	if s.CurrentAmount.IsNegative() {
		return fmt.Errorf("savings goal current amount must be non-negative, got %s", s.CurrentAmount)
	}
	return nil
}

// Progress returns how much of the target has been funded, clamped to [0,100].
func (s SavingsGoal) Progress() Percent {
	if !s.TargetAmount.IsPositive() {
		return 0
	}
	return s.CurrentAmount.Ratio(s.TargetAmount).Clamp()
}
