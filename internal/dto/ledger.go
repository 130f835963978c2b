package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalVoucherRequest defines the payload for posting a journal
// voucher (debt added to a customer). Amount must be strictly positive;
// the sign is applied by the service.
type CreateJournalVoucherRequest struct {
	CustomerID      string          `json:"customerID" binding:"required"`
	Date            *time.Time      `json:"date"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Notes           string          `json:"notes"`
	ReferenceNumber string          `json:"referenceNumber"`
}

// CreateReceiptVoucherRequest defines the payload for posting a receipt
// voucher (payment collected from a customer).
type CreateReceiptVoucherRequest struct {
	CustomerID      string          `json:"customerID" binding:"required"`
	Date            *time.Time      `json:"date"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
	ReferenceNumber string          `json:"referenceNumber"`
}

// ListPostingsParams are the posting list query parameters.
type ListPostingsParams struct {
	PaginationParams
	EntityKind domain.EntityKind  `form:"entityKind" binding:"omitempty,oneof=customer supplier"`
	EntityID   string             `form:"entityID"`
	Type       domain.PostingType `form:"type" binding:"omitempty,oneof=all opening_balance journal receipt invoice return purchase payment"`
}

// EntityRef carries the display fields of the entity a posting or
// statement belongs to.
type EntityRef struct {
	EntityID    string            `json:"entityID"`
	EntityKind  domain.EntityKind `json:"entityKind"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phoneNumber"`
	Balance     decimal.Decimal   `json:"balance"`
}

// PostingResponse defines the data returned for a stored posting.
type PostingResponse struct {
	PostingID       string             `json:"postingID"`
	EntityKind      domain.EntityKind  `json:"entityKind"`
	EntityID        string             `json:"entityID"`
	Entity          *EntityRef         `json:"entity,omitempty"`
	Type            domain.PostingType `json:"type"`
	Date            time.Time          `json:"date"`
	Amount          decimal.Decimal    `json:"amount"`
	Notes           string             `json:"notes,omitempty"`
	ReferenceNumber string             `json:"referenceNumber,omitempty"`
	PaymentMethod   string             `json:"paymentMethod,omitempty"`
	RelatedID       *string            `json:"relatedID,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListPostingsResponse is a page of postings.
type ListPostingsResponse struct {
	Entries    []PostingResponse  `json:"entries"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToPostingResponse converts a domain.Posting to its response DTO.
func ToPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		PostingID:       p.PostingID,
		EntityKind:      p.EntityKind,
		EntityID:        p.EntityID,
		Type:            p.Type,
		Date:            p.Date,
		Amount:          p.Amount,
		Notes:           p.Notes,
		ReferenceNumber: p.ReferenceNumber,
		PaymentMethod:   p.PaymentMethod,
		RelatedID:       p.RelatedID,
		CreatedAt:       p.CreatedAt,
	}
}

// ToPostingResponses converts a slice of postings.
func ToPostingResponses(postings []domain.Posting) []PostingResponse {
	responses := make([]PostingResponse, len(postings))
	for i := range postings {
		responses[i] = ToPostingResponse(&postings[i])
	}
	return responses
}
