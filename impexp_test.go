package cashbook

import (
	"strings"
	"testing"
)

const bankExport = `{
  "account": "checking",
  "transactions": [
    {"posted": "2024-03-05", "value": -40.50, "label": {"category": "食品", "channel": "card"}},
    {"posted": "2024-03-06T10:30:00Z", "value": 1200, "label": {"category": "工资", "channel": "transfer"}}
  ]
}`

func TestImportJSON(t *testing.T) {
	mapping := ImportMapping{
		Records:   "$.transactions[*]",
		Amount:    "$.value",
		Category:  "$.label.category",
		Method:    "$.label.channel",
		Timestamp: "$.posted",
	}
	txs, err := ImportJSON(strings.NewReader(bankExport), mapping)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("imported %d transactions, want 2", len(txs))
	}

	// Negative value becomes an expense with the magnitude kept.
	if txs[0].Kind != Expense || !txs[0].Amount.Equal(dec("40.5")) {
		t.Errorf("first import = %v %s, want expense 40.5", txs[0].Kind, txs[0].Amount)
	}
	if txs[0].Category != "食品" || txs[0].Method != "card" {
		t.Errorf("first import category/method = %q/%q", txs[0].Category, txs[0].Method)
	}
	if got := txs[0].Timestamp.Format("2006-01-02"); got != "2024-03-05" {
		t.Errorf("first import timestamp = %s, want 2024-03-05", got)
	}

	if txs[1].Kind != Income || !txs[1].Amount.Equal(dec("1200")) {
		t.Errorf("second import = %v %s, want income 1200", txs[1].Kind, txs[1].Amount)
	}
	if txs[0].ID == txs[1].ID || txs[0].ID == "" {
		t.Errorf("imported transactions must carry fresh distinct IDs")
	}
}

func TestImportJSON_explicitKind(t *testing.T) {
	payload := `{"rows": [{"amount": 10, "direction": "EXPENSE"}]}`
	mapping := ImportMapping{
		Records: "$.rows[*]",
		Amount:  "$.amount",
		Kind:    "$.direction",
	}
	txs, err := ImportJSON(strings.NewReader(payload), mapping)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if txs[0].Kind != Expense {
		t.Errorf("kind = %v, want expense (explicit kind overrides the sign rule)", txs[0].Kind)
	}
}

func TestImportJSON_errors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		mapping ImportMapping
	}{
		{
			name:    "missing required paths",
			payload: `{}`,
			mapping: ImportMapping{},
		},
		{
			name:    "payload is not JSON",
			payload: `not json`,
			mapping: ImportMapping{Records: "$.rows[*]", Amount: "$.amount"},
		},
		{
			name:    "amount is not a number",
			payload: `{"rows":[{"amount": {"nested": true}}]}`,
			mapping: ImportMapping{Records: "$.rows[*]", Amount: "$.amount"},
		},
		{
			name:    "unknown kind value",
			payload: `{"rows":[{"amount": 10, "direction": "sideways"}]}`,
			mapping: ImportMapping{Records: "$.rows[*]", Amount: "$.amount", Kind: "$.direction"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportJSON(strings.NewReader(tc.payload), tc.mapping); err == nil {
				t.Errorf("ImportJSON should fail")
			}
		})
	}
}
