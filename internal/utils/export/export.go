// Package export renders shoutout rows as CSV for the admin data export.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/bragboard/bragboard-service/internal/types"
)

var shoutoutHeader = []string{
	"id", "title", "message", "giver", "giver_department",
	"receiver", "receiver_department", "category", "visibility",
	"created_at", "edited_at", "tagged_users",
}

// WriteShoutOutsCSV streams the given shoutouts as CSV, one row per shoutout.
func WriteShoutOutsCSV(w io.Writer, shoutouts []types.ShoutOut) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(shoutoutHeader); err != nil {
		return err
	}

	for _, so := range shoutouts {
		tagged := make([]string, len(so.TaggedUsers))
		for i, tu := range so.TaggedUsers {
			tagged[i] = tu.Username
		}

		record := []string{
			so.ID, so.Title, so.Message, so.GiverName, so.GiverDepartment,
			so.ReceiverName, so.ReceiverDepartment, string(so.Category), string(so.Visibility),
			so.CreatedAt, so.EditedAt, strings.Join(tagged, ";"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
