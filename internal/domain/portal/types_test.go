package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSnapshotIntegrity(t *testing.T) {
	s := SeedSnapshot()

	// The user's plan must exist in the catalog.
	require.NotNil(t, FindPlan(s.Plans, s.User.PlanID))

	// Entity ids are unique within their collection.
	seen := make(map[string]bool)
	for _, inv := range s.Invoices {
		assert.False(t, seen[inv.ID])
		seen[inv.ID] = true
		assert.True(t, inv.Status.IsValid())
	}
	for _, c := range s.Claims {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
		assert.True(t, c.Status.IsValid())
	}
}

func TestSeedSnapshotIsolation(t *testing.T) {
	a := SeedSnapshot()
	b := SeedSnapshot()

	a.User.PlanID = 3
	a.Plans[0].Features[0] = "mutated"
	a.Claims = append([]Claim{{ID: "clm-x"}}, a.Claims...)

	assert.Equal(t, 2, b.User.PlanID)
	assert.Equal(t, "Navegación ilimitada", b.Plans[0].Features[0])
	assert.Len(t, b.Claims, 2)
}

func TestCloneIsDeep(t *testing.T) {
	orig := SeedSnapshot()
	copied := orig.Clone()

	copied.Plans[1].Features[0] = "changed"
	copied.Invoices[0].Status = InvoiceStatusPaid

	assert.Equal(t, "Navegación ilimitada", orig.Plans[1].Features[0])
	assert.Equal(t, InvoiceStatusPending, orig.Invoices[0].Status)
}

func TestFindPendingInvoice(t *testing.T) {
	s := SeedSnapshot()
	pending := FindPendingInvoice(s.Invoices)
	require.NotNil(t, pending)
	assert.Equal(t, "inv-001", pending.ID)

	none := FindPendingInvoice([]Invoice{{ID: "inv-x", Status: InvoiceStatusPaid}})
	assert.Nil(t, none)
}

func TestFindPlan(t *testing.T) {
	s := SeedSnapshot()
	assert.Equal(t, "Plus Fibra", FindPlan(s.Plans, 2).Name)
	assert.Nil(t, FindPlan(s.Plans, 99))
}
