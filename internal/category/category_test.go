package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Excluded(t *testing.T) {
	f := NewDefaultFilter()

	assert.True(t, f.Excluded("Literature"))
	assert.True(t, f.Excluded("literature"))
	assert.True(t, f.Excluded("MANAGEMENT SCIENCE"))
	assert.False(t, f.Excluded("Biology"))
	assert.False(t, f.Excluded("Medicine"))
}

func TestFilter_EmptyLabelNeverExcluded(t *testing.T) {
	f := NewDefaultFilter()
	assert.False(t, f.Excluded(""))
	assert.False(t, f.Excluded("   "))
}

func TestFilter_CustomLabels(t *testing.T) {
	f := NewFilter([]string{"Veterinary Science"})

	assert.True(t, f.Excluded("veterinary science"))
	assert.False(t, f.Excluded("Literature"))
}

func TestFilter_EmptySet(t *testing.T) {
	f := NewFilter(nil)
	assert.False(t, f.Excluded("Literature"))
}
