package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bragboard/bragboard-service/internal/types"
)

func TestWriteShoutOutsCSV(t *testing.T) {
	shoutouts := []types.ShoutOut{
		{
			ID:                 "1",
			Title:              "Great launch",
			Message:            "Shipped the release on time",
			GiverName:          "alice",
			GiverDepartment:    "Engineering",
			ReceiverName:       "bob",
			ReceiverDepartment: "Engineering",
			Category:           types.CategoryTeamwork,
			Visibility:         types.VisibilityPublic,
			CreatedAt:          "2025-03-01T10:00:00Z",
			TaggedUsers: []types.TaggedUser{
				{ID: "3", Username: "carol"},
				{ID: "4", Username: "dave"},
			},
		},
		{
			ID:           "2",
			Title:        "Thanks",
			Message:      "Helped me debug, \"above and beyond\"",
			GiverName:    "bob",
			ReceiverName: "alice",
			Category:     types.CategoryMentorship,
			Visibility:   types.VisibilityDepartment,
			CreatedAt:    "2025-03-02T11:00:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteShoutOutsCSV(&buf, shoutouts))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "tagged_users", records[0][len(records[0])-1])

	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "carol;dave", records[1][len(records[1])-1])

	// Quoting survives the round trip
	assert.Equal(t, `Helped me debug, "above and beyond"`, records[2][2])
	assert.Equal(t, "", records[2][len(records[2])-1])
}

func TestWriteShoutOutsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteShoutOutsCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "only the header row")
}
