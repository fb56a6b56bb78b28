package aws

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
)

// Valid sets: a-z,A-Z,0-9,-
// Separator: -
// Squeeze and strip from beginning and/or end
// Names exceeding maxLen keep their head and get the last 7 hex chars of
// the SHA1 hash of the full name appended
type awsResourceNamer struct {
	maxLen int
}

const (
	shortHashLen    = 7
	maxStackNameLen = 128

	nameSeparator = "-"
	namePadding   = "x"
)

var (
	normalizationRegex = regexp.MustCompile("[^A-Za-z0-9-]+")
	squeezeDashesRegex = regexp.MustCompile("[-]{2,}")
)

// Normalize joins prefix and name with a '-', replaces invalid characters
// with '-' and makes sure the result starts with a letter. If the result
// exceeds the maximum length it is truncated and suffixed with a short hash
// of the untruncated name, so distinct long names stay distinct.
func (n *awsResourceNamer) Normalize(prefix, name string) string {
	full := name
	if prefix != "" {
		full = prefix + nameSeparator + name
	}

	normalized := squeezeDashesRegex.ReplaceAllString(
		normalizationRegex.ReplaceAllString(full, nameSeparator), nameSeparator)
	normalized = strings.Trim(normalized, nameSeparator)
	if normalized == "" || !isLetter(normalized[0]) {
		normalized = namePadding + normalized
	}

	if len(normalized) <= n.maxLen {
		return normalized
	}

	hasher := sha1.New()
	hasher.Write([]byte(full))
	hash := strings.ToLower(hex.EncodeToString(hasher.Sum(nil)))
	hash = hash[len(hash)-shortHashLen:]

	head := strings.TrimRight(normalized[:n.maxLen-shortHashLen-1], nameSeparator)
	return head + nameSeparator + hash
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

var stackNamer = &awsResourceNamer{maxLen: maxStackNameLen}

func normalizeStackName(prefix, name string) string {
	return stackNamer.Normalize(prefix, name)
}
