package responses

type FinancialSummary struct {
	Income             float64 `json:"income"`
	Expenses           float64 `json:"expenses"`
	Balance            float64 `json:"balance"`
	PendingPayables    float64 `json:"pending_payables"`
	PendingReceivables float64 `json:"pending_receivables"`
	ProjectedBalance   float64 `json:"projected_balance"`
}
