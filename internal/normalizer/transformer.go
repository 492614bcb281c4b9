package normalizer

import (
	"fmt"

	"campaignetl/internal/models"
)

// Transformer splits a raw table into the client, campaign and economics tables.
type Transformer struct {
	assumedYear int
}

// NewTransformer creates a transformer dating contacts in assumedYear.
func NewTransformer(assumedYear int) *Transformer {
	return &Transformer{assumedYear: assumedYear}
}

// Transform derives one record per table for every raw row, in row order.
// Any row whose contact date cannot be derived fails the whole table.
func (t *Transformer) Transform(tbl *models.Table) (*models.Tables, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}

	n := tbl.Len()
	out := &models.Tables{
		Clients:   make([]models.Client, 0, n),
		Campaigns: make([]models.Campaign, 0, n),
		Economics: make([]models.Economics, 0, n),
	}

	for i := range n {
		campaign, err := t.campaign(tbl, i)
		if err != nil {
			return nil, fmt.Errorf("row %d (client_id %s): %w", i+1, tbl.Value(i, models.ColClientID), err)
		}

		out.Clients = append(out.Clients, client(tbl, i))
		out.Campaigns = append(out.Campaigns, campaign)
		out.Economics = append(out.Economics, economics(tbl, i))
	}

	return out, nil
}

func client(tbl *models.Table, i int) models.Client {
	return models.Client{
		ClientID:      tbl.Value(i, models.ColClientID),
		Age:           tbl.Value(i, models.ColAge),
		Job:           NormalizeJob(tbl.Value(i, models.ColJob)),
		Marital:       tbl.Value(i, models.ColMarital),
		Education:     NormalizeEducation(tbl.Value(i, models.ColEducation)),
		CreditDefault: Flag(tbl.Value(i, models.ColCreditDefault), "yes"),
		Mortgage:      Flag(tbl.Value(i, models.ColMortgage), "yes"),
	}
}

func (t *Transformer) campaign(tbl *models.Table, i int) (models.Campaign, error) {
	day, err := ParseDay(tbl.Value(i, models.ColDay))
	if err != nil {
		return models.Campaign{}, err
	}

	date, err := DeriveLastContactDate(day, tbl.Value(i, models.ColMonth), t.assumedYear)
	if err != nil {
		return models.Campaign{}, err
	}

	return models.Campaign{
		ClientID:                 tbl.Value(i, models.ColClientID),
		NumberContacts:           tbl.Value(i, models.ColNumberContacts),
		ContactDuration:          tbl.Value(i, models.ColContactDuration),
		PreviousCampaignContacts: tbl.Value(i, models.ColPreviousCampaignContacts),
		PreviousOutcome:          Flag(tbl.Value(i, models.ColPreviousOutcome), "success"),
		CampaignOutcome:          Flag(tbl.Value(i, models.ColCampaignOutcome), "yes"),
		LastContactDate:          date,
	}, nil
}

func economics(tbl *models.Table, i int) models.Economics {
	return models.Economics{
		ClientID:           tbl.Value(i, models.ColClientID),
		ConsPriceIdx:       tbl.Value(i, models.ColConsPriceIdx),
		EuriborThreeMonths: tbl.Value(i, models.ColEuriborThreeMonths),
	}
}
