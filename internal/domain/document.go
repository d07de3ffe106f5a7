package domain

import "time"

type (
	// DocumentKind represents the kind of a verification document.
	DocumentKind string
	// DocumentStatus represents the review status of a verification document.
	DocumentStatus string
)

// List of document kinds
const (
	DocBusinessLicense  DocumentKind = "BUSINESS_LICENSE"
	DocTransportLicense DocumentKind = "TRANSPORT_LICENSE"
	DocInsurance        DocumentKind = "INSURANCE"
	DocOther            DocumentKind = "OTHER"
)

// List of document statuses
const (
	DocPending  DocumentStatus = "PENDING"
	DocApproved DocumentStatus = "APPROVED"
	DocRejected DocumentStatus = "REJECTED"
)

var allowedDocumentKinds = [...]DocumentKind{
	DocBusinessLicense, DocTransportLicense, DocInsurance, DocOther,
}

var allowedDocumentStatuses = [...]DocumentStatus{
	DocPending, DocApproved, DocRejected,
}

// RequiredDocumentKinds are the kinds every account must have approved
// before it may publish shipments or vehicle offers. DocOther never gates.
var RequiredDocumentKinds = [...]DocumentKind{
	DocBusinessLicense, DocTransportLicense, DocInsurance,
}

// Valid checks if the DocumentKind is valid
func (k DocumentKind) Valid() bool {
	for _, v := range allowedDocumentKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Required reports whether the kind gates publish eligibility.
func (k DocumentKind) Required() bool {
	for _, v := range RequiredDocumentKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Valid checks if the DocumentStatus is valid
func (s DocumentStatus) Valid() bool {
	for _, v := range allowedDocumentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// VerificationDocument is a compliance artifact submitted for admin review.
// A document is reviewed exactly once; re-submission creates a new document
// and never mutates a rejected one.
type VerificationDocument struct {
	ID           string
	AccountID    string
	Kind         DocumentKind
	Status       DocumentStatus
	SubmittedAt  time.Time
	ReviewerID   string
	RejectReason string // required iff Status is DocRejected
	ReviewedAt   *time.Time
}

// ReviewDecision is one entry of a document's append-only decision log.
type ReviewDecision struct {
	ID         string
	DocumentID string
	ReviewerID string
	Status     DocumentStatus
	Reason     string
	DecidedAt  time.Time
}
