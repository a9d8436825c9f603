package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAcctForm(t *testing.T) {
	res, err := Normalize("acct:lamia@lamia.social")
	assert.NoError(t, err)
	assert.Equal(t, "lamia@lamia.social", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeEmailForm(t *testing.T) {
	res, err := Normalize("lamia@lamia.social")
	assert.NoError(t, err)
	assert.Equal(t, "lamia@lamia.social", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeUrlForm(t *testing.T) {
	res, err := Normalize("https://lamia.social/users/lamia")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social/users/lamia", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeHttpUrlIsForcedToHttpsBase(t *testing.T) {
	res, err := Normalize("http://lamia.social/lamia")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social/lamia", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeDropsPort(t *testing.T) {
	res, err := Normalize("lamia@lamia.social:8443")
	assert.NoError(t, err)
	assert.Equal(t, "lamia@lamia.social", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)

	res, err = Normalize("https://lamia.social:8443/users/lamia")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social/users/lamia", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizePathStyleHandleIsNotEmail(t *testing.T) {
	// The /@ marks a path-style handle; the split-on-@ branch must not fire
	res, err := Normalize("acct:lamia.social/@lamia")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social/@lamia", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeMultipleAtSplitsOnFirst(t *testing.T) {
	res, err := Normalize("we@ird@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "we@ird@example.com", res.ResourceId)
	assert.Equal(t, "https://ird@example.com", res.DiscoveryBaseUrl)
}

func TestNormalizeBareHost(t *testing.T) {
	res, err := Normalize("lamia.social")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizeBareHostWithPath(t *testing.T) {
	res, err := Normalize("lamia.social/lamia/")
	assert.NoError(t, err)
	assert.Equal(t, "lamia.social/lamia/", res.ResourceId)
	assert.Equal(t, "https://lamia.social", res.DiscoveryBaseUrl)
}

func TestNormalizePreservesHostCase(t *testing.T) {
	res, err := Normalize("lamia@Lamia.Social")
	assert.NoError(t, err)
	assert.Equal(t, "https://Lamia.Social", res.DiscoveryBaseUrl)
}

func TestNormalizeMalformed(t *testing.T) {
	_, err := Normalize("")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)

	_, err = Normalize("acct:")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)

	_, err = Normalize("lamia@")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	inputs := []string{"acct:lamia@lamia.social", "https://lamia.social/u/lamia", "lamia.social"}
	for _, input := range inputs {
		first, err1 := Normalize(input)
		second, err2 := Normalize(input)
		assert.Equal(t, err1, err2)
		assert.Equal(t, first, second)
	}
}
