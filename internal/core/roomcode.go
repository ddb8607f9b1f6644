package core

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Room codes are the only access control on a room, so they come from
// crypto/rand. Format: fixed-length uppercase hex, e.g. "A1B2C3".

const codeGenAttempts = 16

func newRoomCode(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate room code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))[:length], nil
}

// nextRoomCode generates a code not present among live rooms. Collisions are
// effectively impossible with a reasonable length but are still retried
// rather than assumed away.
func (h *Hub) nextRoomCode() (string, error) {
	for i := 0; i < codeGenAttempts; i++ {
		code, err := newRoomCode(h.opts.CodeLength)
		if err != nil {
			return "", err
		}
		if _, taken := h.rooms[code]; !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("no free room code after %d attempts", codeGenAttempts)
}
