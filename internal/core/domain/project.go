package domain

import "time"

// Project groups work for a single client engagement.
type Project struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Status    TaskStatus `json:"status"`
	DueDate   time.Time  `json:"due_date,omitempty"`
	Location  string     `json:"location,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ProjectEarnings summarises the paid invoices attached to a project.
type ProjectEarnings struct {
	ProjectID        string  `json:"project_id"`
	TotalEarnings    float64 `json:"total_earnings"`
	PaidInvoiceCount int     `json:"paid_invoices_count"`
}
