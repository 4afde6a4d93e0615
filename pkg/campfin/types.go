package campfin

import (
	"encoding/json"
	"fmt"
)

// Envelope is the top-level JSON object returned by every API endpoint. On
// success Results holds the payload; on failure Errors holds the message
// strings that are folded into the typed error.
type Envelope struct {
	Status    string          `json:"status,omitempty"    yaml:"status,omitempty"`
	Copyright string          `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	BaseURI   string          `json:"base_uri,omitempty"  yaml:"base_uri,omitempty"`
	Cycle     int             `json:"cycle,omitempty"     yaml:"cycle,omitempty"`
	Results   json.RawMessage `json:"results,omitempty"   yaml:"results,omitempty"`
	Errors    []string        `json:"errors,omitempty"    yaml:"errors,omitempty"`
}

// Extraction selects how the meaningful payload is pulled out of the
// envelope. Every endpoint declaration names its strategy explicitly; the
// generic fetch routine evaluates it uniformly.
type Extraction int

const (
	// ExtractFirst takes the first element of results (single-resource gets).
	ExtractFirst Extraction = iota

	// ExtractResults takes the whole results sequence.
	ExtractResults

	// ExtractRaw returns the envelope undecoded.
	ExtractRaw
)

// AllResults decodes the envelope's results sequence.
func AllResults[T any](envelope *Envelope) ([]T, error) {
	var results []T

	err := json.Unmarshal(envelope.Results, &results)
	if err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}

	return results, nil
}

// FirstResult decodes the envelope's results sequence and returns its first
// element. An empty or absent sequence is an error.
func FirstResult[T any](envelope *Envelope) (*T, error) {
	results, err := AllResults[T](envelope)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrEmptyResults
	}

	return &results[0], nil
}

// Filing represents an FEC electronic filing.
type Filing struct {
	ID                 int     `json:"id"                  yaml:"id"`
	Cycle              int     `json:"cycle"               yaml:"cycle"`
	FormType           string  `json:"form_type"           yaml:"form_type"`
	Committee          string  `json:"committee"           yaml:"committee"`
	CommitteeName      string  `json:"committee_name"      yaml:"committee_name"`
	FECURI             string  `json:"fec_uri"             yaml:"fec_uri"`
	DateFiled          string  `json:"date_filed"          yaml:"date_filed"`
	DateCoverageFrom   string  `json:"date_coverage_from"  yaml:"date_coverage_from"`
	DateCoverageTo     string  `json:"date_coverage_to"    yaml:"date_coverage_to"`
	ReceiptsTotal      float64 `json:"receipts_total"      yaml:"receipts_total"`
	DisbursementsTotal float64 `json:"disbursements_total" yaml:"disbursements_total"`
	CashOnHand         float64 `json:"cash_on_hand"        yaml:"cash_on_hand"`
	Amended            bool    `json:"amended"             yaml:"amended"`
	AmendedURI         string  `json:"amended_uri"         yaml:"amended_uri"`
	OriginalFiling     string  `json:"original_filing"     yaml:"original_filing"`
	OriginalURI        string  `json:"original_uri"        yaml:"original_uri"`
	Paper              bool    `json:"paper"               yaml:"paper"`
}

// FormType represents an FEC filing form type.
type FormType struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Candidate represents a candidate within an election cycle.
type Candidate struct {
	ID                 string  `json:"id"                  yaml:"id"`
	Name               string  `json:"name"                yaml:"name"`
	Party              string  `json:"party"               yaml:"party"`
	State              string  `json:"state"               yaml:"state"`
	District           string  `json:"district"            yaml:"district"`
	Committee          string  `json:"committee"           yaml:"committee"`
	FECURI             string  `json:"fec_uri"             yaml:"fec_uri"`
	RelativeURI        string  `json:"relative_uri"        yaml:"relative_uri"`
	Status             string  `json:"status"              yaml:"status"`
	MailingAddress     string  `json:"mailing_address"     yaml:"mailing_address"`
	MailingCity        string  `json:"mailing_city"        yaml:"mailing_city"`
	MailingState       string  `json:"mailing_state"       yaml:"mailing_state"`
	MailingZip         string  `json:"mailing_zip"         yaml:"mailing_zip"`
	TotalReceipts      float64 `json:"total_receipts"      yaml:"total_receipts"`
	TotalDisbursements float64 `json:"total_disbursements" yaml:"total_disbursements"`
	TotalCash          float64 `json:"total_from_individuals,omitempty" yaml:"total_from_individuals,omitempty"`
	CashOnHand         float64 `json:"cash_on_hand"        yaml:"cash_on_hand"`
	DateCoverageFrom   string  `json:"date_coverage_from"  yaml:"date_coverage_from"`
	DateCoverageTo     string  `json:"date_coverage_to"    yaml:"date_coverage_to"`
}

// Committee represents a fundraising committee within an election cycle.
type Committee struct {
	ID          string `json:"id"           yaml:"id"`
	Name        string `json:"name"         yaml:"name"`
	Party       string `json:"party"        yaml:"party"`
	Treasurer   string `json:"treasurer"    yaml:"treasurer"`
	Address     string `json:"address"      yaml:"address"`
	City        string `json:"city"         yaml:"city"`
	State       string `json:"state"        yaml:"state"`
	Zip         string `json:"zip"          yaml:"zip"`
	Candidate   string `json:"candidate"    yaml:"candidate"`
	FECURI      string `json:"fec_uri"      yaml:"fec_uri"`
	RelativeURI string `json:"relative_uri" yaml:"relative_uri"`
	Leadership  bool   `json:"leadership"   yaml:"leadership"`
	SuperPAC    bool   `json:"super_pac"    yaml:"super_pac"`
}

// Contribution represents a committee contribution record.
type Contribution struct {
	Committee     string  `json:"committee"      yaml:"committee"`
	Candidate     string  `json:"candidate"      yaml:"candidate"`
	CandidateName string  `json:"candidate_name" yaml:"candidate_name"`
	Office        string  `json:"office"         yaml:"office"`
	State         string  `json:"state"          yaml:"state"`
	District      string  `json:"district"       yaml:"district"`
	Amount        float64 `json:"amount"         yaml:"amount"`
	Date          string  `json:"date"           yaml:"date"`
	Support       bool    `json:"support"        yaml:"support"`
}
