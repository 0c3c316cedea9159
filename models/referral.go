package models

import "fmt"

// ReferralStatus is the hiring state shown on a referral card.
type ReferralStatus string

const (
	StatusPending  ReferralStatus = "Pendiente"
	StatusActive   ReferralStatus = "Activo"
	StatusAdvanced ReferralStatus = "Avanzados"
)

type Referral struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"column:name;not null" json:"name"`
	Date     string         `gorm:"column:date_label" json:"date"` // e.g. "Referido el 15/05/2024"
	Status   ReferralStatus `gorm:"column:status;index" json:"status"`
	Progress int            `gorm:"column:progress" json:"progress"`
	JobTitle string         `gorm:"column:job_title" json:"jobTitle"`
	ImageURL string         `gorm:"column:image_url" json:"imageUrl"`
	HireDate string         `gorm:"column:hire_date" json:"hireDate"`
}

// Facet is a named filter bucket over the referral list.
type Facet string

const (
	FacetAll      Facet = "Todos"
	FacetPending  Facet = Facet(StatusPending)
	FacetActive   Facet = Facet(StatusActive)
	FacetAdvanced Facet = Facet(StatusAdvanced)
)

// Facets lists the filter chips in display order.
var Facets = []Facet{FacetAll, FacetPending, FacetActive, FacetAdvanced}

var facetAliases = map[string]Facet{
	"":          FacetAll,
	"Todos":     FacetAll,
	"All":       FacetAll,
	"Pendiente": FacetPending,
	"Pending":   FacetPending,
	"Activo":    FacetActive,
	"Active":    FacetActive,
	"Avanzados": FacetAdvanced,
	"Advanced":  FacetAdvanced,
}

// ParseFacet accepts the Spanish chip labels and their English names.
// An empty value means Todos.
func ParseFacet(s string) (Facet, error) {
	f, ok := facetAliases[s]
	if !ok {
		return "", fmt.Errorf("unknown referral facet %q", s)
	}
	return f, nil
}

// FilterReferrals returns the records matching facet, in their original order.
func FilterReferrals(referrals []Referral, facet Facet) []Referral {
	out := make([]Referral, 0, len(referrals))
	for _, r := range referrals {
		if facet == FacetAll || r.Status == ReferralStatus(facet) {
			out = append(out, r)
		}
	}
	return out
}

// ProgressSteps are the labels of the four-stage strip under each card.
var ProgressSteps = []string{"Registrado", "Entrevistado", "Contratado", "Avanzados"}

// ActiveStep maps a progress percentage to the highlighted ProgressSteps index.
// The step is derived from progress alone; status is not consulted.
func ActiveStep(progress int) int {
	switch {
	case progress >= 100:
		return 3
	case progress >= 66:
		return 2
	case progress >= 33:
		return 1
	default:
		return 0
	}
}
