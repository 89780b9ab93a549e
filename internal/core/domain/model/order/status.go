package order

import (
	"strings"

	"orderflow/internal/pkg/errs"
)

// Status is the label of an order's current state. The set of labels is open: any
// non-empty text is a valid status, which is what lets observers match on message
// content rather than on a closed enum.
type Status string

const (
	Created        Status = "CREATED"
	Accepted       Status = "ACCEPTED"
	InPreparation  Status = "IN_PREPARATION"
	OutForDelivery Status = "OUT_FOR_DELIVERY"
	Delivered      Status = "DELIVERED"
	Archived       Status = "ARCHIVED"
)

// Labels used by the shop's Spanish-speaking back office.
const (
	Creado        Status = "CREADO"
	Aceptado      Status = "ACEPTADO"
	EnPreparacion Status = "EN_PREPARACION"
	EnReparto     Status = "EN_REPARTO"
	Entregado     Status = "ENTREGADO"
	Archivado     Status = "ARCHIVADO"
)

var (
	lifecycle        = []Status{Created, Accepted, InPreparation, OutForDelivery, Delivered, Archived}
	spanishLifecycle = []Status{Creado, Aceptado, EnPreparacion, EnReparto, Entregado, Archivado}
)

// Validate rejects blank statuses; everything else is accepted.
func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsKnown reports whether s is one of the well-known labels.
func (s Status) IsKnown() bool {
	_, ok := lifecyclePosition(s)
	return ok
}

// Next returns the status following s in the standard lifecycle
// CREATED -> ACCEPTED -> IN_PREPARATION -> OUT_FOR_DELIVERY -> DELIVERED -> ARCHIVED
// (or its Spanish counterpart). It returns false for ARCHIVED and for unknown labels.
func (s Status) Next() (Status, bool) {
	for _, flow := range [][]Status{lifecycle, spanishLifecycle} {
		for i, st := range flow {
			if st == s && i+1 < len(flow) {
				return flow[i+1], true
			}
		}
	}
	return "", false
}

func (s Status) String() string {
	return string(s)
}

func lifecyclePosition(s Status) (int, bool) {
	for _, flow := range [][]Status{lifecycle, spanishLifecycle} {
		for i, st := range flow {
			if st == s {
				return i, true
			}
		}
	}
	return 0, false
}
