package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV("   "))
	assert.Equal(t, []string{"winery", "cidery"}, SplitCSV("winery, cidery"))
	assert.Equal(t, []string{"Seneca"}, SplitCSV(",Seneca,,"))
}
