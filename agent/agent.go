// Package agent generates the advisory financial statement. It is an
// external collaborator from the ledger's point of view: given a
// transaction and account snapshot it returns a markdown summary string,
// or a fixed fallback string when anything goes wrong. Nothing in the
// core depends on this call succeeding.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/wealthsense/wealthsense"
)

// ModelName is the Gemini model used for the advisory statement.
const ModelName = "gemini-2.5-flash"

// Fallback is returned whenever the statement cannot be generated.
const Fallback = "An error occurred while analyzing your financial data. Please try again later."

// NoInsights is returned when the model answers but with empty text.
const NoInsights = "Unable to generate insights at this time."

const promptTemplate = `Act as a professional financial advisor. Analyze the following transaction history and provide a concise, high-level summary.
Identify spending patterns, highlight any unusual activity, and give 3 actionable budgeting tips based on the data.

Transactions:
%s

Current Net Worth: %s

Keep the response professional, encouraging, and easy to read. Use Markdown for formatting.`

// txContext is the flattened view of a transaction handed to the model.
type txContext struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"desc"`
	Account     string `json:"account"`
}

// GenerateStatement builds the advisory prompt from the ledger snapshot
// and asks the model for a statement. It never returns an error: any
// failure is logged and surfaces as the Fallback string.
func GenerateStatement(ctx context.Context, client *genai.Client, l *wealthsense.Ledger) string {
	prompt, err := buildPrompt(l)
	if err != nil {
		log.Printf("advisory statement: %v", err)
		return Fallback
	}

	resp, err := client.Models.GenerateContent(ctx, ModelName, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("advisory statement: generate content: %v", err)
		return Fallback
	}
	return fromResponse(resp.Text())
}

// fromResponse maps the raw model text to the user-facing statement.
func fromResponse(text string) string {
	if text == "" {
		log.Printf("advisory statement: empty response from model")
		return NoInsights
	}
	return text
}

func buildPrompt(l *wealthsense.Ledger) (string, error) {
	var txs []txContext
	for tx := range l.Transactions() {
		account := ""
		if a := l.Account(tx.AccountID); a != nil {
			account = a.Name
		}
		txs = append(txs, txContext{
			Date:        tx.Date.String(),
			Amount:      tx.Amount.String(),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: tx.Description,
			Account:     account,
		})
	}

	snapshot, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal transaction context: %w", err)
	}
	return fmt.Sprintf(promptTemplate, snapshot, l.NetWorth()), nil
}
