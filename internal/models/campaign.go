package models

import "strconv"

// CampaignHeader is the fixed column order of campaign.csv.
var CampaignHeader = []string{
	ColClientID, ColNumberContacts, ColContactDuration, ColPreviousCampaignContacts,
	ColPreviousOutcome, ColCampaignOutcome, ColLastContactDate,
}

// Campaign holds the interaction history of one raw record.
type Campaign struct {
	ClientID                 string
	NumberContacts           string
	ContactDuration          string
	PreviousCampaignContacts string
	LastContactDate          string // YYYY-MM-DD
	PreviousOutcome          int
	CampaignOutcome          int
}

// Record renders the campaign in CampaignHeader order.
func (c Campaign) Record() []string {
	return []string{
		c.ClientID,
		c.NumberContacts,
		c.ContactDuration,
		c.PreviousCampaignContacts,
		strconv.Itoa(c.PreviousOutcome),
		strconv.Itoa(c.CampaignOutcome),
		c.LastContactDate,
	}
}
