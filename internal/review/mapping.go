package review

import (
	"errors"
	"fmt"
	"strings"
)

type Bucket string

const (
	BucketDaily    Bucket = "DAILY"
	BucketBizness  Bucket = "BIZNESS"
	BucketContent  Bucket = "CONTENT"
	BucketHealth   Bucket = "HEALTH"
	BucketFinances Bucket = "FINANCES"
	BucketLife     Bucket = "LIFE"
	BucketGolf     Bucket = "GOLF"
)

// AllBuckets is also the dashboard order before priority sorting.
var AllBuckets = []Bucket{
	BucketDaily,
	BucketBizness,
	BucketContent,
	BucketHealth,
	BucketFinances,
	BucketLife,
	BucketGolf,
}

var ErrUnknownBucket = errors.New("unknown review bucket")

func (b Bucket) IsValid() bool {
	for _, v := range AllBuckets {
		if v == b {
			return true
		}
	}
	return false
}

// AreaMapping maps raw task area names onto review buckets.
type AreaMapping struct {
	buckets map[string]Bucket
}

func NewAreaMapping(raw map[string]string) (AreaMapping, error) {
	m := AreaMapping{buckets: make(map[string]Bucket, len(raw))}
	for area, name := range raw {
		b := Bucket(strings.ToUpper(strings.TrimSpace(name)))
		if !b.IsValid() {
			return AreaMapping{}, fmt.Errorf("area %q: %w: %s", area, ErrUnknownBucket, name)
		}
		m.buckets[normalizeArea(area)] = b
	}
	return m, nil
}

// Bucket looks up a raw area name ignoring case and surrounding space.
func (m AreaMapping) Bucket(area string) (Bucket, bool) {
	b, ok := m.buckets[normalizeArea(area)]
	return b, ok
}

func normalizeArea(area string) string {
	return strings.ToLower(strings.TrimSpace(area))
}
