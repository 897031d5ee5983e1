package usererr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidf(t *testing.T) {
	err := Invalidf("%s is not a valid cryptocurrency", "dogcoin")
	assert.EqualError(t, err, "dogcoin is not a valid cryptocurrency")
	assert.True(t, IsInvalidArgument(err))
}

func TestIsInvalidArgumentSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("resolving coin: %w", Invalidf("bad value"))
	assert.True(t, IsInvalidArgument(err))
}

func TestIsInvalidArgumentRejectsOtherErrors(t *testing.T) {
	assert.False(t, IsInvalidArgument(errors.New("disk on fire")))
	assert.False(t, IsInvalidArgument(nil))
}
