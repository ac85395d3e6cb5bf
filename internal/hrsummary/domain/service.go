package domain

import "context"

// RiskBreakdown counts analyses per risk level. Every analysis in the window
// lands in exactly one bucket; anything that is not HIGH or MEDIUM counts
// as low.
type RiskBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// OrgSummaryResponse is a best-effort snapshot: the three sub-results come
// from independent queries and are not transactionally consistent with one
// another.
type OrgSummaryResponse struct {
	EmployeesAtHighRiskToday int                      `json:"employeesAtHighRiskToday"`
	TotalCheckinsToday       int                      `json:"totalCheckinsToday"`
	PerDepartment            map[string]RiskBreakdown `json:"perDepartment"`
}

type Service interface {
	Summary(context.Context) (OrgSummaryResponse, error)
}
