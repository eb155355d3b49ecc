package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlaceholderID produces a client-side id for an unsaved draft. It is
// discarded the moment the server assigns the real id; stores never see
// placeholder ids because drafts are not inserted before the round trip.
func PlaceholderID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), uuid.New().String()[:8])
}
