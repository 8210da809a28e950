package domain

// RatingBucket selects equipment by the average of its review ratings.
type RatingBucket string

const (
	Rating5Stars    RatingBucket = "5stars"
	Rating4PlusStar RatingBucket = "4+stars"
	Rating3PlusStar RatingBucket = "3+stars"
	Rating2PlusStar RatingBucket = "2+stars"
)

var ratingThresholds = map[RatingBucket]float64{
	Rating5Stars:    4.5,
	Rating4PlusStar: 4,
	Rating3PlusStar: 3,
	Rating2PlusStar: 2,
}

// RatingBuckets is the reference list offered to listing clients.
var RatingBuckets = []RatingBucket{Rating5Stars, Rating4PlusStar, Rating3PlusStar, Rating2PlusStar}

// Threshold returns the minimum average for the bucket. Unknown buckets report ok=false.
func (b RatingBucket) Threshold() (float64, bool) {
	t, ok := ratingThresholds[b]
	return t, ok
}
