package gov

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// computeDigest hashes the canonical JSON of a snapshot with its volatile
// fields (generation timestamp, the digest itself) zeroed. Snapshots of an
// unchanged tree therefore compare equal by digest across runs and machines.
func computeDigest(snap *Snapshot) (string, error) {
	canonical := *snap
	canonical.GeneratedAt = time.Time{}
	canonical.Digest = ""

	data, err := json.Marshal(&canonical)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot for digest: %w", err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
