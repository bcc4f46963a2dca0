package uid

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

const gameIDBytes = 8

// GenerateGameID returns a random hex id used to address one game session.
func GenerateGameID() string {
	bytes := make([]byte, gameIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(bytes)
}
