// Package models defines the raw and derived tables of the campaign dataset.
package models

// Raw column names as they appear in the archived CSV payloads.
const (
	ColClientID                 = "client_id"
	ColAge                      = "age"
	ColJob                      = "job"
	ColMarital                  = "marital"
	ColEducation                = "education"
	ColCreditDefault            = "credit_default"
	ColMortgage                 = "mortgage"
	ColNumberContacts           = "number_contacts"
	ColContactDuration          = "contact_duration"
	ColPreviousCampaignContacts = "previous_campaign_contacts"
	ColPreviousOutcome          = "previous_outcome"
	ColCampaignOutcome          = "campaign_outcome"
	ColDay                      = "day"
	ColMonth                    = "month"
	ColConsPriceIdx             = "cons_price_idx"
	ColEuriborThreeMonths       = "euribor_three_months"
	ColLastContactDate          = "last_contact_date"
)

// RawColumns lists every column an input archive is expected to carry.
var RawColumns = []string{
	ColClientID, ColAge, ColJob, ColMarital, ColEducation, ColCreditDefault,
	ColMortgage, ColNumberContacts, ColContactDuration, ColPreviousCampaignContacts,
	ColPreviousOutcome, ColCampaignOutcome, ColDay, ColMonth, ColConsPriceIdx,
	ColEuriborThreeMonths,
}

// Table is an in-memory CSV table addressed by column name.
// Rows keep insertion order.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates an empty table with the given header.
// Duplicate column names keep their first position.
func NewTable(columns []string) *Table {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		t.addColumn(c)
	}

	return t
}

func (t *Table) addColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}

	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)

	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}

	return len(t.columns) - 1
}

// Columns returns the header in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row. Short rows are padded with empty cells and
// cells beyond the header are dropped.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Value returns the cell at row i for column name, or "" if the column is absent.
func (t *Table) Value(i int, name string) string {
	j, ok := t.index[name]
	if !ok {
		return ""
	}

	return t.rows[i][j]
}

// Concat appends every row of other, matching cells by column name.
// Columns only present in other are added to the header and left empty
// for rows that came before.
func (t *Table) Concat(other *Table) {
	positions := make([]int, len(other.columns))
	for i, c := range other.columns {
		positions[i] = t.addColumn(c)
	}

	for _, src := range other.rows {
		row := make([]string, len(t.columns))
		for i, cell := range src {
			row[positions[i]] = cell
		}

		t.rows = append(t.rows, row)
	}
}
