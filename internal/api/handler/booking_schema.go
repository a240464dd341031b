package handler

import (
	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// updateDraftRequest carries partial field assignments. Omitted fields leave
// the draft untouched; numeric fields are bounded at the edit boundary the
// way the form inputs were.
type updateDraftRequest struct {
	FullName     *string `json:"full_name"`
	Age          *int    `json:"age"          validate:"omitempty,gte=0"`
	MobileNumber *string `json:"mobile_number"`
	Email        *string `json:"email"`
	PartySize    *int    `json:"party_size"   validate:"omitempty,gte=1"`
}

type choosePaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

type draftResponse struct {
	FullName     string `json:"full_name"`
	Age          int    `json:"age"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	PartySize    int    `json:"party_size"`
}

// flowResponse is the booking flow read model returned by every flow
// endpoint. TotalAmount is present from review onward; Message only in a
// terminal state; PaymentMethods only while a choice is open.
type flowResponse struct {
	State          string        `json:"state"`
	Tour           tourResponse  `json:"tour"`
	Draft          draftResponse `json:"draft"`
	TotalAmount    *int64        `json:"total_amount,omitempty"`
	Message        string        `json:"message,omitempty"`
	PaymentMethods []string      `json:"payment_methods,omitempty"`
}

func toFlowResponse(v *ports.FlowView) flowResponse {
	resp := flowResponse{
		State: string(v.State),
		Tour:  toTourResponse(v.Tour),
		Draft: draftResponse{
			FullName:     v.Draft.FullName,
			Age:          v.Draft.Age,
			MobileNumber: v.Draft.MobileNumber,
			Email:        v.Draft.Email,
			PartySize:    v.Draft.PartySize,
		},
		Message: v.OutcomeMessage,
	}

	if v.State == domain.FlowReviewing || v.State == domain.FlowSubmitting {
		total := v.Total
		resp.TotalAmount = &total
	}
	if v.State == domain.FlowReviewing {
		methods := domain.PaymentMethods()
		resp.PaymentMethods = make([]string, 0, len(methods))
		for _, m := range methods {
			resp.PaymentMethods = append(resp.PaymentMethods, string(m))
		}
	}
	return resp
}
