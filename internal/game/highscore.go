package game

import (
	"log/slog"
	"strconv"
	"strings"

	"ballattax/internal/storage"
)

// LoadHighScore reads the persisted high score. A missing or malformed
// value reads as zero.
func LoadHighScore(st storage.Store) int {
	v, ok := st.GetItem(HighScoreKey)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		slog.Warn("ignoring stored high score", "value", v)
		return 0
	}
	return n
}

func SaveHighScore(st storage.Store, score int) error {
	return st.SetItem(HighScoreKey, strconv.Itoa(score))
}
