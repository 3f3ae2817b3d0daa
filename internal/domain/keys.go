package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// keyNamespace is fixed forever; changing it would orphan every record
// already derived from it.
var keyNamespace = uuid.MustParse("9a1c1af6-5b7d-4e60-93a8-2f4c3d11be42")

// DeriveRecordID maps (item, agent) to a stable record key. The same item
// seen again by the same agent always derives the same id.
func DeriveRecordID(item ItemID, agent UserID) RecordID {
	return RecordID(deriveKey(fmt.Sprintf("%s-%s", item, agent)))
}

// DeriveRoomID maps (thread, agent) to the stable room key grouping all
// records of one conversation thread.
func DeriveRoomID(thread ThreadID, agent UserID) RoomID {
	return RoomID(deriveKey(fmt.Sprintf("%s-%s", thread, agent)))
}

func deriveKey(name string) string {
	return uuid.NewSHA1(keyNamespace, []byte(name)).String()
}
