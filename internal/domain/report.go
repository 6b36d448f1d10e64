package domain

import "time"

// Report is a single lobbying disclosure. Date is a calendar date carried at
// midnight in the configured display zone; Published and Edited are full
// timestamps converted to the same zone. Revisions, when requested, share
// the report shape but never nest further.
type Report struct {
	ID                string
	Date              time.Time
	Published         time.Time
	Edited            *time.Time
	Title             string
	Body              string
	ReceivedBenefit   string
	ProvidedBenefit   string
	OurParticipants   string
	OtherParticipants string
	Extra             map[string]any
	IsDraft           bool
	HasRevisions      bool
	Author            *Author
	Revisions         []Report
}

// ReportInput carries the fields a user submits when creating or editing a
// report. ID is empty on create.
type ReportInput struct {
	ID                string
	Title             string
	Body              string
	ReceivedBenefit   string
	ProvidedBenefit   string
	Date              time.Time
	OurParticipants   string
	OtherParticipants string
	IsDraft           bool
}

type ReportPage struct {
	TotalCount int
	Reports    []Report
}
