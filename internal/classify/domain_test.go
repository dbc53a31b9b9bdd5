package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		want Domain
	}{
		{"Samsung smartphone with camera", DomainElectronics},
		{"BMW sedan vehicle", DomainAutomotive},
		{"Nike running shoes apparel", DomainClothing},
		{"orange juice drink bottle", DomainFoodBeverage},
		{"wooden garden bench", DomainGeneral},
		{"", DomainGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.desc), "description %q", tt.desc)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, DomainElectronics, Classify("LAPTOP COMPUTER"))
}

func TestClassify_TieBreaksByTableOrder(t *testing.T) {
	// One electronics keyword and one automotive keyword: electronics is
	// earlier in the table and wins the tie.
	assert.Equal(t, DomainElectronics, Classify("phone mount for car dashboard"))
}

func TestClassify_HighestCountWins(t *testing.T) {
	// Two automotive keywords beat one electronics keyword.
	assert.Equal(t, DomainAutomotive, Classify("truck and suv phone holder"))
}
