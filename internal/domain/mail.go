package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WeeklyReportMailData struct {
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	IssueDates   []string `json:"issueDates"`
	MissingTotal int      `json:"missingTotal"`
	BusiestName  string   `json:"busiestName"`
	BusiestDays  int      `json:"busiestDays"`
}
