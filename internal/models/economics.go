package models

// EconomicsHeader is the fixed column order of economics.csv.
var EconomicsHeader = []string{ColClientID, ColConsPriceIdx, ColEuriborThreeMonths}

// Economics holds the macroeconomic indicators attached to one raw record.
type Economics struct {
	ClientID           string
	ConsPriceIdx       string
	EuriborThreeMonths string
}

// Record renders the indicators in EconomicsHeader order.
func (e Economics) Record() []string {
	return []string{e.ClientID, e.ConsPriceIdx, e.EuriborThreeMonths}
}

// Tables bundles the three derived tables of one run. Each slice is in raw row order.
type Tables struct {
	Clients   []Client
	Campaigns []Campaign
	Economics []Economics
}
