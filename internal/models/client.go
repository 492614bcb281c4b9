package models

import "strconv"

// ClientHeader is the fixed column order of client.csv.
var ClientHeader = []string{
	ColClientID, ColAge, ColJob, ColMarital, ColEducation, ColCreditDefault, ColMortgage,
}

// Client holds the demographic part of one raw record.
type Client struct {
	// Education is nil when the value is missing.
	Education     *string
	ClientID      string
	Age           string
	Job           string
	Marital       string
	CreditDefault int
	Mortgage      int
}

// Record renders the client in ClientHeader order. A missing education is an empty cell.
func (c Client) Record() []string {
	education := ""
	if c.Education != nil {
		education = *c.Education
	}

	return []string{
		c.ClientID,
		c.Age,
		c.Job,
		c.Marital,
		education,
		strconv.Itoa(c.CreditDefault),
		strconv.Itoa(c.Mortgage),
	}
}
