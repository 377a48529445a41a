package jobdesc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResponsibilitiesBullets(t *testing.T) {
	text := "Responsibilities:\n• build data pipelines end to end\n• maintain reporting dashboards\n• tiny\n"
	items := extractResponsibilities(text)

	require.Len(t, items, 2, "items at or under ten characters are discarded")
	assert.Equal(t, "build data pipelines end to end", items[0])
	assert.Equal(t, "maintain reporting dashboards", items[1])
}

func TestExtractResponsibilitiesDashBullets(t *testing.T) {
	text := "Duties:\n- coordinate release schedules\n- review pull requests daily\n"
	items := extractResponsibilities(text)

	assert.Len(t, items, 2)
}

func TestExtractResponsibilitiesSentenceFallback(t *testing.T) {
	text := "The role involves building data pipelines. You will maintain dashboards for stakeholders. Short."
	items := extractResponsibilities(text)

	require.Len(t, items, 2, "without bullets the section splits into sentences over fifteen characters")
	assert.Equal(t, "the role involves building data pipelines.", items[0])
}

func TestExtractResponsibilitiesCappedAtTen(t *testing.T) {
	text := "Responsibilities:\n"
	for i := 0; i < 14; i++ {
		text += fmt.Sprintf("• handle recurring operational task number %d\n", i)
	}
	items := extractResponsibilities(text)

	assert.Len(t, items, 10)
}

func TestExtractResponsibilitiesStopsAtNextHeader(t *testing.T) {
	text := "Responsibilities: ship features weekly and support releases. Requirements: 5 years of go."
	items := extractResponsibilities(text)

	for _, item := range items {
		assert.NotContains(t, item, "5 years", "the section ends at the next known header")
	}
}

func TestExtractResponsibilitiesNoSection(t *testing.T) {
	assert.Empty(t, extractResponsibilities("A text with no matching keywords at all."))
}
