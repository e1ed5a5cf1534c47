package uid

import (
	"strings"

	"github.com/google/uuid"
)

// Prefix ties entry IDs to the event edition.
const Prefix = "AIC26"

// New returns a participant entry ID of the form AIC26-XXXXXX, where the
// suffix is 6 uppercase hex characters of a random UUID. 16^6 combinations
// is enough for a single event of a few thousand attendees; the unique
// index on participants.uid catches the unlikely collision.
func New() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Prefix + "-" + strings.ToUpper(raw[:6])
}
