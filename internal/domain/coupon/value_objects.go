package coupon

import (
	"errors"
	"strconv"
)

var ErrUnknownArtworkBucket = errors.New("unknown artwork bucket")

type Code string

func (c Code) String() string {
	return string(c)
}

// ArtworkBucket selects which static image accompanies a coupon.
type ArtworkBucket int

const (
	Bucket100 ArtworkBucket = 100
	Bucket150 ArtworkBucket = 150
	Bucket200 ArtworkBucket = 200
)

var AllBuckets = []ArtworkBucket{Bucket100, Bucket150, Bucket200}

// BucketFor maps 200 and 150 to their own artwork; every other amount, 100 included,
// gets the 100 artwork.
func BucketFor(discountAmount int) ArtworkBucket {
	switch discountAmount {
	case 200:
		return Bucket200
	case 150:
		return Bucket150
	default:
		return Bucket100
	}
}

func ParseBucket(s string) (ArtworkBucket, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrUnknownArtworkBucket
	}
	b := ArtworkBucket(n)
	for _, known := range AllBuckets {
		if b == known {
			return b, nil
		}
	}
	return 0, ErrUnknownArtworkBucket
}

func (b ArtworkBucket) String() string {
	return strconv.Itoa(int(b))
}

func FormatAmount(amount int) string {
	return strconv.Itoa(amount) + "€"
}
