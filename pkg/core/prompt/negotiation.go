package prompt

// NegotiationAnalyzeID is the prompt driving the price-increase narrative.
const NegotiationAnalyzeID = "negotiation.analyze"

// NegotiationSystemPrompt frames every narrative request.
const NegotiationSystemPrompt = "You are a procurement and negotiation expert. Provide structured analysis and practical recommendations in English."

const negotiationUserTmpl = `
You are a procurement and negotiation expert. Analyze the following situation and provide a structured response in English:

**SUPPLIER INFORMATION:**
- Supplier: {{.SupplierName}} ({{.SupplierNumber}})
- Contact: {{.SupplierContactName}} ({{.SupplierContactEmail}})
- Location: {{.SupplierLocation}}

**PART INFORMATION:**
- Part: {{.PartNumber}} - {{.PartName}}
- Material: {{.Material}}
- Currency: {{.Currency}}

**PRICE ANALYSIS:**
- Current price: {{.CurrentPrice}} {{.Currency}}
- Proposed new price: {{.NewPrice}} {{.Currency}}
- Requested increase: {{.PctIncrease}}%
- Estimated impact in 2025: {{.IncrementalCost}} {{.Currency}}
- Total estimated cost 2025: {{.TotalSpend}} {{.Currency}}

**User message:** {{.Message}}

Provide a structured response with the following sections:

1. **EXECUTIVE SUMMARY** (2-3 lines)
2. **IMPACT ANALYSIS** (detailed with numbers)
3. **NEGOTIATION RECOMMENDATIONS** (specific strategies)
4. **SUGGESTED RESPONSE** (full explanation for the user)

Format the response using markdown for better presentation. Do not include any label or title like 'Structured Response' in your answer.
`

func init() {
	Get().Register(&Template{
		ID:             NegotiationAnalyzeID,
		Name:           "Price Increase Analysis",
		Description:    "Structured negotiation narrative for a supplier price-increase request",
		SystemPrompt:   NegotiationSystemPrompt,
		UserPromptTmpl: negotiationUserTmpl,
		Version:        "1.0",
	})
}
