package server

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lumiere/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func TestDecodeAndValidateFeature(t *testing.T) {
	s := &Service{validate: newValidator()}

	values := url.Values{}
	values.Set("title", "Enseignement")
	values.Set("description", "La Parole chaque semaine")
	values.Set("iconName", "BookOpen")

	r := httptest.NewRequest("POST", "/admin/features", formRequest(values))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var feature types.Feature
	require.NoError(t, s.decodeAndValidate(r, &feature))
	assert.Equal(t, "Enseignement", feature.Title)
	assert.Equal(t, "BookOpen", feature.IconName)
}

func TestDecodeAndValidateRejectsUnknownIcon(t *testing.T) {
	s := &Service{validate: newValidator()}

	values := url.Values{}
	values.Set("title", "Enseignement")
	values.Set("iconName", "Rocket")

	r := httptest.NewRequest("POST", "/admin/features", formRequest(values))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var feature types.Feature
	err := s.decodeAndValidate(r, &feature)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icon")
}

func TestDecodeAndValidateRejectsMissingTitle(t *testing.T) {
	s := &Service{validate: newValidator()}

	values := url.Values{}
	values.Set("iconName", "Heart")

	r := httptest.NewRequest("POST", "/admin/features", formRequest(values))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var feature types.Feature
	err := s.decodeAndValidate(r, &feature)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestPostedOrderIndex(t *testing.T) {
	values := url.Values{}
	values.Set("orderIndex", "4")
	r := httptest.NewRequest("POST", "/admin/features", formRequest(values))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	n, ok := postedOrderIndex(r)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	r = httptest.NewRequest("POST", "/admin/features", formRequest(url.Values{}))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	_, ok = postedOrderIndex(r)
	assert.False(t, ok)
}
